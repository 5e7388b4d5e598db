// ioc-triage is a grab bag of the transforms and lookups that come up
// during indicator triage: codec and hash helpers, file hex dumps, host
// facts, WHOIS, and a malicious-domain classification backed by the
// InQuest IOC index.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ioc-triage/internal/codec"
	"ioc-triage/internal/config"
	"ioc-triage/internal/errs"
	"ioc-triage/internal/hashutil"
	"ioc-triage/internal/hexdump"
	"ioc-triage/internal/hostinfo"
	"ioc-triage/internal/logx"
	"ioc-triage/internal/netutil"
	"ioc-triage/internal/sources"
)

const version = "0.2.0"

var (
	configPath string
	verbosity  int
	timeoutS   int

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "ioc-triage",
	Short:         "Utility belt for security-analyst triage tasks",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Root().PersistentFlags().Changed("verbosity") {
			cfg.Verbosity = verbosity
		}
		if cmd.Root().PersistentFlags().Changed("timeout") {
			cfg.TimeoutS = timeoutS
		}
		logx.SetVerbosity(cfg.Verbosity)
		sources.Configure(cfg.LookupBaseURL, cfg.WhoisServer, cfg.SpoolDir)
		return nil
	},
}

// opCtx bounds every network-facing command with the configured timeout.
func opCtx() (context.Context, context.CancelFunc) {
	seconds := 60
	if cfg != nil && cfg.TimeoutS > 0 {
		seconds = cfg.TimeoutS
	}
	return context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
}

var decodeAsHex bool

var decodeCmd = &cobra.Command{
	Use:   "decode <base64|rot13> <text>",
	Short: "Decode base64 or rot13 text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var decoded string
		switch args[0] {
		case "base64":
			var err error
			decoded, err = codec.Base64Decode(args[1])
			if err != nil {
				return err
			}
		case "rot13":
			decoded = codec.ROT13(args[1])
		default:
			return errs.NewUnsupportedOperationError("decode", args[0])
		}

		// Decoded base64 is frequently binary; --hex renders it the same
		// way the hexdump command renders files.
		if decodeAsHex {
			fmt.Print(hexdump.Bytes([]byte(decoded)))
			return nil
		}
		fmt.Println(decoded)
		return nil
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode <base64> <text>",
	Short: "Encode text as base64",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "base64":
			fmt.Println(codec.Base64Encode(args[1]))
			return nil
		default:
			return errs.NewUnsupportedOperationError("encode", args[0])
		}
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <sha256|md5> <text>",
	Short: "Hash text and print the lowercase hex digest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "sha256":
			fmt.Println(hashutil.SHA256Hex(args[1]))
			return nil
		case "md5":
			fmt.Println(hashutil.MD5Hex(args[1]))
			return nil
		default:
			return errs.NewUnsupportedOperationError("hash", args[0])
		}
	},
}

var hexdumpCmd = &cobra.Command{
	Use:   "hexdump <file>",
	Short: "Print a hex/ASCII dump of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, err := hexdump.File(args[0])
		if err != nil {
			return err
		}
		fmt.Print(dump)
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <domain>...",
	Short: "Classify domains against the InQuest IOC index",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opCtx()
		defer cancel()

		group, groupCtx := errgroup.WithContext(ctx)
		concurrency := runtime.NumCPU()
		if concurrency <= 0 {
			concurrency = 1
		}
		group.SetLimit(concurrency)

		verdicts := make([]sources.Classification, len(args))
		for i, raw := range args {
			domain := netutil.NormalizeDomain(raw)
			if domain == "" {
				return fmt.Errorf("not a usable domain: %q", raw)
			}
			i, domain := i, domain
			group.Go(func() error {
				verdict, err := sources.Classify(groupCtx, domain)
				if err != nil {
					return err
				}
				verdicts[i] = verdict
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}

		for i, raw := range args {
			fmt.Printf("%s: %s\n", netutil.NormalizeDomain(raw), verdicts[i])
		}
		return nil
	},
}

var whoisCmd = &cobra.Command{
	Use:   "whois <domain>",
	Short: "Raw port-43 WHOIS lookup for the registrable apex",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain := netutil.NormalizeDomain(args[0])
		if domain == "" {
			return fmt.Errorf("not a usable domain: %q", args[0])
		}
		apex := netutil.Registrable(domain)
		if apex != domain {
			logx.Debugf("whois: reduced %s to registrable apex %s", domain, apex)
		}

		ctx, cancel := opCtx()
		defer cancel()

		response, err := sources.Whois(ctx, apex)
		if err != nil {
			return err
		}
		fmt.Print(response)
		return nil
	},
}

var defangCmd = &cobra.Command{
	Use:   "defang <text>",
	Short: "Rewrite dots as [.] for safe sharing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(netutil.Defang(args[0]))
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Host and network trivia",
}

var infoField string

var infoSystemCmd = &cobra.Command{
	Use:   "system",
	Short: "Host facts: hostname, CPU, OS release, process count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opCtx()
		defer cancel()

		switch infoField {
		case "all":
			report, err := hostinfo.Collect(ctx)
			if err != nil {
				return err
			}
			fmt.Print(report)
			return nil
		case "hostname":
			return printField(hostinfo.Hostname(ctx))
		case "cpu-cores":
			return printField(hostinfo.CPUCores(ctx))
		case "cpu-speed":
			speed, err := hostinfo.CPUSpeedMHz(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%.0f MHz\n", speed)
			return nil
		case "os-release":
			return printField(hostinfo.OSRelease(ctx))
		case "procs":
			return printField(hostinfo.ProcessCount(ctx))
		default:
			return errs.NewUnsupportedOperationError("info system", infoField)
		}
	},
}

func printField[T any](value T, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

var infoInternalIPCmd = &cobra.Command{
	Use:   "internal-ip",
	Short: "Local address the OS routes outbound traffic through",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opCtx()
		defer cancel()

		ip, err := netutil.InternalIP(ctx)
		if err != nil {
			return err
		}
		fmt.Println(ip)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tool version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ioc-triage %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML or JSON config file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "verbosity (0=info, 2=debug, 3=trace)")
	rootCmd.PersistentFlags().IntVar(&timeoutS, "timeout", 60, "network timeout in seconds")

	decodeCmd.Flags().BoolVar(&decodeAsHex, "hex", false, "render the decoded payload as a hex/ASCII dump")

	infoSystemCmd.Flags().StringVar(&infoField, "field", "all",
		"hostname|cpu-cores|cpu-speed|os-release|procs|all")

	infoCmd.AddCommand(infoSystemCmd, infoInternalIPCmd)
	rootCmd.AddCommand(decodeCmd, encodeCmd, hashCmd, hexdumpCmd,
		classifyCmd, whoisCmd, defangCmd, infoCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logx.Errorf("%v", err)
		if suggestion := usageHint(err); suggestion != "" {
			fmt.Fprintln(os.Stderr, suggestion)
		}
		os.Exit(1)
	}
}

// usageHint maps error kinds onto a one-line nudge for the operator.
func usageHint(err error) string {
	switch {
	case errs.IsUnsupported(err):
		return "run with --help to list supported operations"
	case errs.IsNetwork(err):
		return "check connectivity, or raise --timeout"
	case errs.IsNotFound(err):
		return "double-check the path; relative paths resolve from " + cwd()
	default:
		return ""
	}
}

func cwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
