package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

func printYAML(v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
