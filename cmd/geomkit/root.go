package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/chazu/geomkit/pkg/engine"
)

// config is the merged view of flags, GEOMKIT_* variables and the config file.
type config struct {
	Precision string
	Backend   string
	Output    string
	Timeout   time.Duration
	Color     bool
}

func (c config) engineOptions() (engine.Options, error) {
	p, err := engine.ParsePrecision(c.Precision)
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{Precision: p, Backend: c.Backend, Timeout: c.Timeout}, nil
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:          "geomkit",
		Short:        "Closest-point and intersection queries on 3D primitives",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cfgFile, cmd.Flags())
		},
	}

	fs := root.PersistentFlags()
	fs.StringVar(&cfgFile, "config", "", "config file (default ./geomkit.yaml)")
	addConfigFlags(fs)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	root.AddCommand(newEvalCmd(v), newBackendsCmd())
	return root
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("precision", "float64", "query precision: float32 or float64")
	fs.String("backend", "native", "vector backend, see the backends command")
	fs.StringP("output", "o", "text", "output format: text, json or yaml")
	fs.Duration("timeout", engine.EvalTimeout, "evaluation time limit")
	fs.Bool("color", true, "colorize text output")
}

// loadConfig layers the config file and environment under the flags.
func loadConfig(v *viper.Viper, cfgFile string, fs *pflag.FlagSet) error {
	v.SetEnvPrefix("GEOMKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("geomkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		klog.V(1).Infof("using config file %s", v.ConfigFileUsed())
	}

	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

func readConfig(v *viper.Viper) config {
	return config{
		Precision: v.GetString("precision"),
		Backend:   v.GetString("backend"),
		Output:    v.GetString("output"),
		Timeout:   v.GetDuration("timeout"),
		Color:     v.GetBool("color"),
	}
}

func newEvalCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file|->",
		Short: "Evaluate a script and print its query results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := readConfig(v)
			opts, err := cfg.engineOptions()
			if err != nil {
				return err
			}
			source, err := readSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			app, err := NewApp(opts)
			if err != nil {
				return err
			}
			result := app.Evaluate(source)
			if err := render(cmd.OutOrStdout(), result, cfg.Output, cfg.Color); err != nil {
				return err
			}
			if !result.OK() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(result.Errors))
			}
			return nil
		},
	}
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the vector backends available at each precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range []engine.Precision{engine.Float64, engine.Float32} {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p, strings.Join(engine.Backends(p), ", "))
			}
			return nil
		},
	}
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	return string(b), nil
}
