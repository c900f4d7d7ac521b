package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/steve-jordahllabs/ceph-notification-mgmt/pkg/config"
)

var (
	verbosity  int
	configPath string

	endpoint  string
	accessKey string
	secretKey string
	region    string
	profile   string
	insecure  bool

	settings *config.Config
	logger   logr.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ceph-notification-mgmt",
	Short: "Manage bucket notifications on a Ceph RGW or other S3-compatible gateway",
	Long: `ceph-notification-mgmt is an administrative tool for inspecting, creating,
and deleting bucket notification configurations against an S3-compatible
object storage gateway such as Ceph RGW.

Topics are delivery targets (e.g. AMQP exchanges) registered through the
gateway's SNS-compatible API; bucket notifications reference them by ARN.
The gateway is the system of record: every command issues a single
request and prints the raw response.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbosity < 0 || verbosity >= 128 {
			return fmt.Errorf("invalid verbosity level %d: it should be >= 0 and < 128", verbosity)
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(-1 * verbosity))
		zc.DisableStacktrace = true
		zapLog, err := zc.Build()
		if err != nil {
			return fmt.Errorf("cannot initialize Zap logger: %w", err)
		}
		logger = zapr.NewLogger(zapLog)
		return resolveSettings(cmd)
	},
}

// resolveSettings layers the connection settings: YAML file (if any) at the
// bottom, then environment defaults, then explicit command-line flags. A flag
// value is taken whenever the flag was set on the command line or carries a
// non-empty environment default; file values only fill the remaining gaps.
func resolveSettings(cmd *cobra.Command) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("endpoint") || endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if flags.Changed("access-key") || accessKey != "" {
		cfg.AccessKey = accessKey
	}
	if flags.Changed("secret-key") || secretKey != "" {
		cfg.SecretKey = secretKey
	}
	if flags.Changed("region") || region != "" {
		cfg.Region = region
	}
	if flags.Changed("profile") || profile != "" {
		cfg.Profile = profile
	}
	if flags.Changed("insecure") {
		cfg.Insecure = insecure
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return err
	}
	settings = cfg
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to optional YAML settings file")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", os.Getenv("AWS_ENDPOINT_URL"), "URL of the S3-compatible gateway")
	rootCmd.PersistentFlags().StringVar(&accessKey, "access-key", os.Getenv("AWS_ACCESS_KEY_ID"), "S3 access key (ignored if --profile is set)")
	rootCmd.PersistentFlags().StringVar(&secretKey, "secret-key", os.Getenv("AWS_SECRET_ACCESS_KEY"), "S3 secret key (ignored if --profile is set)")
	rootCmd.PersistentFlags().StringVar(&region, "region", os.Getenv("AWS_REGION"), "Region name used for request signing")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", os.Getenv("AWS_PROFILE"), "Shared AWS config profile to use")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
}
