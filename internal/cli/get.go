package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/snaghq/snag/internal/config"
	"github.com/snaghq/snag/internal/logger"
	"github.com/snaghq/snag/internal/output"
	"github.com/snaghq/snag/pkg/jsonpath"
	"github.com/snaghq/snag/transfer"
)

// getOptions collects everything the get command needs so the work can
// be driven from tests without cobra.
type getOptions struct {
	url        string
	headers    []string
	timeout    time.Duration
	timeoutSet bool
	configPath string
	extract    string
	verbose    bool
	noColor    bool
}

var getCmd = &cobra.Command{
	Use:   "get URL",
	Short: "Fetch a URL with a single GET request and print the body",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headers, _ := cmd.Flags().GetStringArray("header")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		configPath, _ := cmd.Flags().GetString("config")
		extract, _ := cmd.Flags().GetString("extract")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		opts := getOptions{
			url:        args[0],
			headers:    headers,
			timeout:    timeout,
			timeoutSet: cmd.Flags().Changed("timeout"),
			configPath: configPath,
			extract:    extract,
			verbose:    verbose,
			noColor:    noColor,
		}

		formatter := output.NewFormatter(verbose, noColor)
		out, err := runGet(opts, formatter)
		if err != nil {
			fmt.Fprint(os.Stderr, formatter.FormatError(err))
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

// runGet performs the request described by opts and returns the
// formatted output.
func runGet(opts getOptions, formatter *output.Formatter) (string, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return "", err
		}
		cfg = loaded
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return "", err
	}
	if opts.timeoutSet {
		timeout = opts.timeout
	}

	headers := mergeHeaders(cfg.Headers, parseHeaderFlags(opts.headers))

	clientOpts := []transfer.Option{
		transfer.WithTimeout(timeout),
	}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, transfer.WithUserAgent(cfg.UserAgent))
	}
	if cfg.BufferHint > 0 {
		clientOpts = append(clientOpts, transfer.WithBufferHint(cfg.BufferHint))
	}
	if opts.verbose {
		clientOpts = append(clientOpts, transfer.WithLogger(logger.New("debug")))
	}

	client, err := transfer.NewClient(clientOpts...)
	if err != nil {
		return "", err
	}
	defer client.Close()

	var buf strings.Builder
	if opts.verbose {
		buf.WriteString(formatter.FormatRequest(opts.url, headers))
	}

	body, err := client.Get(context.Background(), opts.url, headers)
	if err != nil {
		return "", err
	}

	if opts.extract != "" {
		value, err := jsonpath.Extract(body, opts.extract)
		if err != nil {
			return "", err
		}
		buf.WriteString(formatter.FormatBody(value))
		return buf.String(), nil
	}

	buf.WriteString(formatter.FormatBody(body))
	return buf.String(), nil
}

// parseHeaderFlags turns repeated -H "Name: value" flags into a map.
// Flags without a colon are ignored.
func parseHeaderFlags(flags []string) map[string]string {
	headers := make(map[string]string)
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers
}

// mergeHeaders overlays flag headers on top of config headers.
func mergeHeaders(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for name, value := range base {
		merged[name] = value
	}
	for name, value := range override {
		merged[name] = value
	}
	return merged
}

func init() {
	getCmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	getCmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	getCmd.Flags().StringP("config", "c", "", "Path to a client config file (YAML or JSON)")
	getCmd.Flags().StringP("extract", "e", "", "JSONPath expression to extract from the response body")
	getCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	getCmd.Flags().Bool("no-color", false, "Disable colored output")
}
