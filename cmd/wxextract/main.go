package main

import (
	"context"
	"os"
	fp "path/filepath"
	"time"

	"github.com/go-shiori/wxextract"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := newCommand().Execute()
	if err != nil {
		logrus.Fatalln(err)
	}
}

func newCommand() *cobra.Command {
	// Prepare cmd
	cmd := &cobra.Command{
		Use:           "wxextract <url>",
		Short:         "CLI tool for extracting title and content of WeChat article",
		Args:          cobra.ExactArgs(1),
		RunE:          cmdHandler,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("output", "o", "", "path to save extraction result, use - for stdout")
	cmd.Flags().StringP("user-agent", "u", "", "set custom user agent")
	cmd.Flags().BoolP("quiet", "q", false, "disable logging")
	cmd.Flags().Bool("verbose", false, "more verbose logging")

	cmd.Flags().IntP("timeout", "t", 0, "maximum time (in second) before request timeout, 0 means no timeout")
	cmd.Flags().Bool("insecure", false, "skip X.509 (TLS) certificate verification")

	return cmd
}

func cmdHandler(cmd *cobra.Command, args []string) error {
	// Arguments are valid at this point, so don't print usage on failure
	cmd.SilenceUsage = true

	// Parse flags
	outputPath, _ := cmd.Flags().GetString("output")
	userAgent, _ := cmd.Flags().GetString("user-agent")
	disableLog, _ := cmd.Flags().GetBool("quiet")
	useVerboseLog, _ := cmd.Flags().GetBool("verbose")

	timeout, _ := cmd.Flags().GetInt("timeout")
	skipTLSVerification, _ := cmd.Flags().GetBool("insecure")

	// Prepare output target
	useStdout := outputPath == "-"
	if outputPath == "" {
		outputPath = defaultOutputPath()
	}

	// Create extractor
	ext := wxextract.Extractor{
		UserAgent:        userAgent,
		EnableLog:        !disableLog,
		EnableVerboseLog: !disableLog && useVerboseLog,

		RequestTimeout:      time.Duration(timeout) * time.Second,
		SkipTLSVerification: skipTLSVerification,
	}
	ext.Validate()

	result, err := ext.Extract(context.Background(), args[0])
	if err != nil {
		return err
	}

	// Save the result
	if useStdout {
		_, err = result.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err = result.Save(outputPath); err != nil {
		return err
	}

	if !disableLog {
		logrus.Printf("saved to %s", outputPath)
		logrus.Println("extraction finished, ready for analysis")
	}

	return nil
}

// defaultOutputPath returns path of the output file, which located
// in the same directory as the executable.
func defaultOutputPath() string {
	exePath, err := os.Executable()
	if err != nil {
		return wxextract.DefaultOutputName
	}

	if resolved, err := fp.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}

	return fp.Join(fp.Dir(exePath), wxextract.DefaultOutputName)
}
