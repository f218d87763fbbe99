// Package cli contains the supportctl commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/localnerve/supportdash/internal/bootstrap"
	"github.com/localnerve/supportdash/internal/config"
	"github.com/localnerve/supportdash/internal/database"
	"github.com/localnerve/supportdash/internal/logger"
	"github.com/localnerve/supportdash/internal/output"
)

var version = "dev"

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

// session is the state shared by the commands of one invocation.
type session struct {
	v        *viper.Viper
	cfgFile  string
	cfg      *config.Config
	log      *logger.Logger
	printer  *output.Printer
	services bootstrap.Services
	db       *gorm.DB
}

// NewRootCmd builds the supportctl command tree.
func NewRootCmd() *cobra.Command {
	s := &session{v: viper.New()}

	root := &cobra.Command{
		Use:   "supportctl",
		Short: "Support analytics from the terminal",
		Long: `supportctl reads the same snapshot as the supportdash server and prints
apps, status summaries and sentiment trends.

Example usage:
  supportctl apps --user 1 --sort TotalMessages   # One user's apps by volume
  supportctl trends --range 7d --group-by week     # Weekly trends for the last 7 days
  supportctl summary                               # App counts per status
  supportctl taxonomy --json                       # The status table as JSON`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&s.cfgFile, "config", "", "config file (default is .supportctl.yaml)")
	flags.String("data-source", "", "snapshot source: embedded or database (default from DATA_SOURCE)")
	flags.String("timezone", "", "time zone for bucketing and presets (default from TIMEZONE)")
	flags.String("color", "auto", "color output: auto, always, never")
	flags.Bool("json", false, "output as JSON")
	flags.BoolP("verbose", "v", false, "verbose logging")

	_ = s.v.BindPFlag("data_source", flags.Lookup("data-source"))
	_ = s.v.BindPFlag("timezone", flags.Lookup("timezone"))
	_ = s.v.BindPFlag("output.color", flags.Lookup("color"))
	_ = s.v.BindPFlag("output.json", flags.Lookup("json"))
	_ = s.v.BindPFlag("verbose", flags.Lookup("verbose"))

	root.AddCommand(
		newAppsCmd(s),
		newTrendsCmd(s),
		newSummaryCmd(s),
		newStatusesCmd(s),
		newTaxonomyCmd(s),
	)
	return root
}

// Execute runs supportctl with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// init reads the config file and environment, then loads the snapshot.
func (s *session) init(cmd *cobra.Command) error {
	if s.cfgFile != "" {
		s.v.SetConfigFile(s.cfgFile)
	} else {
		s.v.SetConfigName(".supportctl")
		s.v.SetConfigType("yaml")
		s.v.AddConfigPath(".")
		s.v.AddConfigPath("$HOME/.config/supportctl")
	}
	s.v.SetEnvPrefix("SUPPORTCTL")
	s.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	s.v.AutomaticEnv()
	if err := s.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	mode, err := output.ParseColorMode(s.v.GetString("output.color"))
	if err != nil {
		return err
	}
	s.printer = output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(mode))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if ds := s.v.GetString("data_source"); ds != "" {
		cfg.DataSource = ds
	}
	if tz := s.v.GetString("timezone"); tz != "" {
		cfg.Timezone = tz
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	// The CLI answers immediately.
	cfg.SimulatedLatency = 0
	s.cfg = cfg

	logMode := "cli"
	if s.v.GetBool("verbose") {
		logMode = "development"
	}
	if s.log, err = logger.New(logMode); err != nil {
		return err
	}

	snap, db, err := bootstrap.LoadSnapshot(cmd.Context(), cfg, s.log)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	s.db = db
	s.services = bootstrap.NewServices(cfg, snap, s.log, nil, nil)
	s.log.Debug("snapshot loaded", "summary", bootstrap.Describe(snap))
	return nil
}

func (s *session) close() error {
	if s.log != nil {
		s.log.Sync()
	}
	if s.db != nil {
		return database.Close(s.db)
	}
	return nil
}

func (s *session) jsonOutput() bool {
	return s.v.GetBool("output.json")
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
