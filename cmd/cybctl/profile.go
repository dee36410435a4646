package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// flagProfile is a named bundle of the flags the decode/encode/diff
// commands accept, loadable from a YAML file via --profile so a user
// doesn't have to repeat the same -f/-t style flag pairs on every
// invocation.
type flagProfile struct {
	Dialect        string `yaml:"dialect,omitempty"`
	Flattened      bool   `yaml:"flattened,omitempty"`
	RequireInitial bool   `yaml:"requireInitial,omitempty"`
	SkipGeometry   bool   `yaml:"skipGeometry,omitempty"`
	RoundGeometry  bool   `yaml:"roundGeometry,omitempty"`
	IgnoreComments bool   `yaml:"ignoreComments,omitempty"`
	Silent         bool   `yaml:"silent,omitempty"`
}

type profileFile struct {
	Profiles map[string]flagProfile `yaml:"profiles"`
}

func loadProfiles(path string) (profileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profileFile{}, err
	}
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return profileFile{}, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	return pf, nil
}

func loadNamedProfile(path, name string) (flagProfile, error) {
	pf, err := loadProfiles(path)
	if err != nil {
		return flagProfile{}, err
	}
	p, ok := pf.Profiles[name]
	if !ok {
		return flagProfile{}, fmt.Errorf("no profile named %q in %s", name, path)
	}
	return p, nil
}

func newProfileCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "List or inspect YAML flag profiles",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the profiles defined in the profile file",
		RunE: func(_ *cobra.Command, _ []string) error {
			pf, err := loadProfiles(file)
			if err != nil {
				return err
			}
			for name := range pf.Profiles {
				fmt.Println(name)
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one profile's flag values",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := loadNamedProfile(file, args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&file, "profile-file", "cybctl-profiles.yaml", "path to the YAML profile file")
	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
