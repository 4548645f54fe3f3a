package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "jb",
		Short:         "Job board CLI (jb): sign in, search job offers and apply",
		Long:          "jb talks to the job board API to authenticate candidates and companies, search job offers and submit applications. When the API is unreachable it falls back to a local demo directory and catalog.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cfg, err := loadConfig()
	if err != nil {
		return failingRoot(rootCmd, err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return failingRoot(rootCmd, err)
	}

	app, err := wireApp(cfg, logger)
	if err != nil {
		return failingRoot(rootCmd, err)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newRegisterCmd(app),
		newJobsCmd(app),
	)

	return rootCmd
}

func failingRoot(rootCmd *cobra.Command, err error) *cobra.Command {
	rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
		return err
	}
	return rootCmd
}
