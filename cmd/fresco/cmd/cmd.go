package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fresco"
	"github.com/gogpu/fresco/decoder"
	colorsample "github.com/gogpu/fresco/samples/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameVerbosity     = "verbosity"
	optionNameMaxWidth      = "max-width"
	optionNameMaxHeight     = "max-height"
	optionNameInterpolation = "interpolation"
	optionNameStatic        = "static"
	optionNameJobs          = "jobs"
	optionNameOutput        = "output"
	optionNameWidth         = "width"
	optionNameHeight        = "height"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	fs      afero.Fs
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "fresco",
			Short:         "Detect, decode and render images",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				if err := c.initConfig(); err != nil {
					return err
				}
				logger, err := newLogger(cmd.ErrOrStderr(), c.config.GetString(optionNameVerbosity))
				if err != nil {
					return err
				}
				fresco.SetLogger(logger)
				return nil
			},
		},
	}

	for _, o := range opts {
		o(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()
	c.initDetectCmd()
	c.initDecodeCmd()
	c.initRenderCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.fresco.yaml)")
	globalFlags.String(optionNameVerbosity, "warn", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".fresco"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".fresco" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}
	config.SetFs(c.fs)

	// Environment
	config.SetEnvPrefix("fresco")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	if err := config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// bindFlags makes the local flags of cmd available through the config, so
// that they can also be set from the environment or the config file.
func (c *command) bindFlags(cmd *cobra.Command, _ []string) error {
	return c.config.BindPFlags(cmd.Flags())
}

func (c *command) setDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().Int(optionNameMaxWidth, 0, "downscale images wider than this many pixels (0 = no limit)")
	cmd.Flags().Int(optionNameMaxHeight, 0, "downscale images taller than this many pixels (0 = no limit)")
	cmd.Flags().String(optionNameInterpolation, decoder.ApproxBiLinear.String(), "downscaling filter: approx-bilinear, nearest, bilinear or catmullrom")
	cmd.Flags().Bool(optionNameStatic, false, "decode only the first frame of animated images")
}

func (c *command) decodeOptions() (decoder.Options, error) {
	interp, err := decoder.ParseInterpolation(c.config.GetString(optionNameInterpolation))
	if err != nil {
		return decoder.Options{}, err
	}
	return decoder.Options{
		MaxWidth:         c.config.GetInt(optionNameMaxWidth),
		MaxHeight:        c.config.GetInt(optionNameMaxHeight),
		Interpolation:    interp,
		ForceStaticImage: c.config.GetBool(optionNameStatic),
	}, nil
}

// newPipeline returns a pipeline for the default formats and the color
// sample format.
func (c *command) newPipeline() (*fresco.Pipeline, error) {
	r, err := fresco.NewRegistry(
		fresco.WithDefaultFormats(),
		fresco.WithPlugins(colorsample.Plugin()),
	)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return fresco.NewPipeline(r), nil
}

func (c *command) cleanPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		p = filepath.Join(c.homeDir, p[2:])
	}
	return filepath.Clean(p)
}

func newLogger(w io.Writer, verbosity string) (*slog.Logger, error) {
	var level slog.Level
	switch verbosity {
	case "0", "silent":
		return nil, nil
	case "1", "error":
		level = slog.LevelError
	case "2", "warn":
		level = slog.LevelWarn
	case "3", "info":
		level = slog.LevelInfo
	case "4", "debug":
		level = slog.LevelDebug
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
