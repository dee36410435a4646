package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cyberiadaml "github.com/go-cyberiada/cyberiadaml"
)

func newEncodeCmd() *cobra.Command {
	var (
		dialectFlag   string
		skipGeometry  bool
		roundGeometry bool
		output        string
		profileName   string
		profileFile   string
	)

	cmd := &cobra.Command{
		Use:   "encode <file>",
		Short: "Decode a GraphML diagram and re-encode it in the requested dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if profileName != "" {
				p, err := loadNamedProfile(profileFile, profileName)
				if err != nil {
					return err
				}
				if !c.Flags().Changed("dialect") && p.Dialect != "" {
					dialectFlag = p.Dialect
				}
				if !c.Flags().Changed("skip-geometry") {
					skipGeometry = p.SkipGeometry
				}
				if !c.Flags().Changed("round-geometry") {
					roundGeometry = p.RoundGeometry
				}
			}

			srcDialect, err := parseDialect(dialectFlag)
			if err != nil {
				return err
			}
			if srcDialect == cyberiadaml.DialectAuto {
				return errAutoNotAllowedForEncode
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			doc, err := cyberiadaml.Decode(in, cyberiadaml.DialectAuto, cyberiadaml.Options{})
			in.Close()
			if err != nil {
				return err
			}

			w := os.Stdout
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return cyberiadaml.Encode(doc, srcDialect, cyberiadaml.EncodeFlags{
				SkipGeometry:  skipGeometry,
				RoundGeometry: roundGeometry,
			}, w)
		},
	}

	cmd.Flags().StringVar(&dialectFlag, "dialect", "native", "target dialect: native or legacy")
	cmd.Flags().BoolVar(&skipGeometry, "skip-geometry", false, "omit geometry data from the output")
	cmd.Flags().BoolVar(&roundGeometry, "round-geometry", false, "round geometry values to whole numbers")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, or - for stdout")
	cmd.Flags().StringVar(&profileName, "profile", "", "name of a flag profile to apply before explicit flags")
	cmd.Flags().StringVar(&profileFile, "profile-file", "cybctl-profiles.yaml", "path to the YAML profile file")

	return cmd
}

var errAutoNotAllowedForEncode = fmt.Errorf("--dialect must be native or legacy for encode, not auto")
