// cmd/root.go
/*
Copyright © 2025 Mehrn0ush
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var cfgFile string
var jobFilePath string
var jobDirPath string
var debugMode bool

// Debug prints a message if debug mode is enabled.
func Debug(format string, args ...interface{}) {
	if debugMode {
		fmt.Printf("[DEBUG] %s\n", fmt.Sprintf(format, args...))
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobparser",
	Short: "Decode Windows Task Scheduler job files into text reports",
	Long: `A forensic decoder for Windows Task Scheduler task definitions.

Binary ".job" files are decoded field by field into a fixed text report;
XML task definitions (UTF-16LE) are rendered as key/value lines.
Point it at a single file or at a directory of job files.`,
	Version: Version,
	Example: `  # Decode a single binary job file
  jobparser --file At1.job

  # Decode every .job and .xml file in a directory
  jobparser --dir C:/Windows/Tasks`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			// Log the full command that was run
			fullCmd := "jobparser"
			if cmd.Name() != "jobparser" {
				fullCmd += " " + cmd.Name()
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "debug" {
					return // Skip the debug flag itself
				}
				if f.Value.Type() == "bool" {
					fullCmd += " --" + f.Name
				} else {
					fullCmd += " --" + f.Name + "=" + f.Value.String()
				}
			})
			if len(args) > 0 {
				fullCmd += " " + strings.Join(args, " ")
			}
			Debug("command: %s", fullCmd)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cfgFile)
		if cfg.Debug {
			debugMode = true
		}

		if jobDirPath != "" {
			scanDirectory(jobDirPath, cfg.extensions())
			return
		}
		if jobFilePath != "" {
			if err := parseFile(jobFilePath); err != nil {
				errColor.Fprintf(os.Stderr, "Unable to process file %s: %v\n", jobFilePath, err)
			}
			return
		}
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jobparser.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug output")
	rootCmd.Flags().StringVarP(&jobFilePath, "file", "f", "", "job file to decode")
	rootCmd.Flags().StringVarP(&jobDirPath, "dir", "d", "", "directory of job files to decode")
}
