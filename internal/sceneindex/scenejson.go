package sceneindex

import (
	"encoding/json"
	"fmt"
)

// jsonObject is a generic decoded JSON object. Scene.json carries fields
// this package has no reason to model (layer transforms, viewpoints, app
// metadata); walking a generic tree rather than a strict struct lets
// Rewrite round-trip every one of them unchanged, mutating only the
// DataFileOffset leaves it owns.
type jsonObject = map[string]interface{}

func parseSceneDocument(raw []byte) (jsonObject, error) {
	var doc jsonObject
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func asObject(v interface{}, context string) (jsonObject, error) {
	obj, ok := v.(jsonObject)
	if !ok {
		return nil, fmt.Errorf("%s: expected object, got %T", context, v)
	}
	return obj, nil
}

func asArray(v interface{}, context string) ([]interface{}, error) {
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %T", context, v)
	}
	return arr, nil
}

func asString(v interface{}, context string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %T", context, v)
	}
	return s, nil
}

func rootLayer(doc jsonObject) (jsonObject, string, error) {
	sequence, err := asObject(doc["Sequence"], "Sequence")
	if err != nil {
		return nil, "", err
	}
	root, err := asObject(sequence["RootLayer"], "Sequence.RootLayer")
	if err != nil {
		return nil, "", err
	}
	name, err := asString(root["Name"], "RootLayer.Name")
	if err != nil {
		return nil, "", err
	}
	return root, name, nil
}

func layerImplementation(layer jsonObject, context string) (jsonObject, error) {
	return asObject(layer["Implementation"], context+".Implementation")
}

func layerChildren(layer jsonObject, context string) ([]interface{}, error) {
	impl, err := layerImplementation(layer, context)
	if err != nil {
		return nil, err
	}
	return asArray(impl["Children"], context+".Implementation.Children")
}
