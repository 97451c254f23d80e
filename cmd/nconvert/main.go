package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/muir/nconvert"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	command := NewNconvertCommand()
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type convertOptions struct {
	typeName    string
	cultureName string
	cultureFile string
	many        bool
	absent      []int
	verbose     bool
}

func NewNconvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nconvert [command]",
		Short: "Try out command-line value conversion",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.AddCommand(NewConvertCommand())
	cmd.AddCommand(NewCulturesCommand())
	return cmd
}

func NewConvertCommand() *cobra.Command {
	o := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert --type TYPE [flags] VALUE...",
		Short: "Convert values the way an option of type TYPE would receive them",
		Long: `Convert values the way an option of type TYPE would receive them.

TYPE is a Go type name: bool, string, int, int8 ... uint64, float32,
float64, complex128, duration, time, optionally prefixed with "*" (nullable),
"?" (Option[T]), "[]" (many values, implies --many), or "[N]" (array).

Examples:
  nconvert convert --type float64 --culture de-DE 1.234,5
  nconvert convert --type '[]int' 1 2 3
  nconvert convert --type '*int' --absent 0 ignored`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&o.typeName, "type", "t", "string", "target type")
	cmd.Flags().StringVarP(&o.cultureName, "culture", "c", "", "culture name, such as en-US or de_CH.UTF-8 (default invariant)")
	cmd.Flags().StringVar(&o.cultureFile, "culture-file", "", "YAML or JSON file with culture definitions")
	cmd.Flags().BoolVarP(&o.many, "many", "m", false, "convert as a multi-valued option")
	cmd.Flags().IntSliceVar(&o.absent, "absent", nil, "positions (0-based) of values to treat as given without text")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log conversion details")
	return cmd
}

func (o *convertOptions) run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	culture, err := o.culture()
	if err != nil {
		return err
	}
	t, err := parseTypeName(o.typeName)
	if err != nil {
		return err
	}
	isScalar := !o.many && !strings.HasPrefix(o.typeName, "[")

	raw := nconvert.Texts(args...)
	for _, i := range o.absent {
		if i < 0 || i >= len(raw) {
			return errors.Errorf("--absent %d is out of range for %d values", i, len(raw))
		}
		raw[i] = nil
	}
	log.WithFields(logrus.Fields{
		"type":    t.String(),
		"culture": culture.Name(),
		"scalar":  isScalar,
		"values":  len(raw),
	}).Debug("converting")

	converter := nconvert.NewConverter(nconvert.WithCulture(culture))
	outcome, err := converter.ConvertTo(t, isScalar, raw...)
	if err != nil {
		if nconvert.IsContractViolation(err) {
			log.WithError(err).Debug("contract violation")
		}
		return err
	}
	if !outcome.OK() {
		fmt.Fprintln(cmd.OutOrStdout(), "Failure")
		return errors.Errorf("invalid value for %s", o.typeName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", outcome.Value())
	return nil
}

func (o *convertOptions) culture() (nconvert.Culture, error) {
	if o.cultureFile != "" {
		cultures, err := nconvert.CulturesFromFile(o.cultureFile)
		if err != nil {
			return nconvert.Culture{}, err
		}
		if c, ok := cultures[o.cultureName]; ok {
			return c, nil
		}
	}
	if o.cultureName == "" {
		return nconvert.CultureFromEnv("NCONVERT_CULTURE")
	}
	return nconvert.LookupCulture(o.cultureName)
}

func NewCulturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cultures",
		Short: "List built-in cultures and their number symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDECIMAL\tGROUP\tMINUS\tDATE")
			for _, name := range nconvert.Cultures() {
				c, err := nconvert.LookupCulture(name)
				if err != nil {
					return err
				}
				date := ""
				if layouts := c.Layouts(); len(layouts) > 0 {
					date = layouts[0]
				}
				fmt.Fprintf(w, "%s\t%q\t%q\t%q\t%s\n", c.Name(), c.DecimalSeparator(), c.GroupSeparator(), c.MinusSign(), date)
			}
			return w.Flush()
		},
		SilenceUsage: true,
	}
}
