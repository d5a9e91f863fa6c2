package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/goform"
)

type pathsResult struct {
	All  []string `json:"all"`
	Leaf []string `json:"leaf"`
}

func readValues(path string) (map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return goform.DecodeValues(file, goform.FormatOf(path))
}

func newPathsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "List the paths of a JSON or YAML values file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readValues(args[0])
			if err != nil {
				return err
			}
			f, err := goform.New(goform.Options{InitialValues: values}, nil)
			if err != nil {
				return err
			}
			res := pathsResult{All: f.AllPaths(), Leaf: f.LeafPaths()}
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(res)
			}
			leaf := map[string]bool{}
			for _, p := range res.Leaf {
				leaf[p] = true
			}
			for _, p := range res.All {
				kind := "container"
				if leaf[p] {
					kind = "leaf"
				}
				fmt.Fprintf(out, "%s\t%s\n", p, kind)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of text")
	return cmd
}
