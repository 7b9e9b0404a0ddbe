package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/san-kum/phystutor/internal/config"
	"github.com/san-kum/phystutor/internal/profile"
	"github.com/san-kum/phystutor/internal/tui"
	"github.com/san-kum/phystutor/internal/tutor"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	plotsDir   string
	userID     string
)

// main registers commands and flags; a bare invocation starts the
// interactive chat session. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "phystutor",
		Short: "physics tutoring assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			tut, cfg, err := buildTutor()
			if err != nil {
				return err
			}
			return tui.Run(tut, cfg.PromptPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory")
	rootCmd.PersistentFlags().StringVar(&plotsDir, "plots", "", "plot output directory")
	rootCmd.PersistentFlags().StringVar(&userID, "user", "default", "student profile id")

	unitsCmd := &cobra.Command{
		Use:   "units [value unit to unit]",
		Short: "convert a quantity between units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/units " + strings.Join(args, " "))
		},
	}

	kinCmd := &cobra.Command{
		Use:   "kin [key=value, ...]",
		Short: "solve constant-acceleration kinematics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/kin " + strings.Join(args, " "))
		},
	}

	plotMotionCmd := &cobra.Command{
		Use:   "plot-motion [key=value, ...]",
		Short: "render x(t), v(t), a(t) for uniform acceleration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/plot_motion " + strings.Join(args, " "))
		},
	}

	dynCmd := &cobra.Command{
		Use:   "dyn [1d|incline] [key=value, ...]",
		Short: "apply Newton's second law to a flat surface or incline",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/dyn " + strings.Join(args, " "))
		},
	}

	projCmd := &cobra.Command{
		Use:   "projectile [key=value, ...]",
		Short: "solve ballistic motion and render the trajectory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/projectile " + strings.Join(args, " "))
		},
	}

	fbdCmd := &cobra.Command{
		Use:   "fbd [atwood m1|m2 | incline | 1d]",
		Short: "draw a free-body diagram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/fbd " + strings.Join(args, " "))
		},
	}

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "interactive tutoring session",
		RunE: func(cmd *cobra.Command, args []string) error {
			tut, cfg, err := buildTutor()
			if err != nil {
				return err
			}
			return tui.Run(tut, cfg.PromptPath)
		},
	}

	askCmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "one-shot question to the tutor model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(strings.Join(args, " "))
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "student profile",
	}
	profileCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "print the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand("/profile")
		},
	})
	profileCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "discard the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := profile.NewStore(cfg.DataDir).Reset(userID); err != nil {
				return err
			}
			fmt.Println("profile reset")
			return nil
		},
	})

	rootCmd.AddCommand(unitsCmd, kinCmd, plotMotionCmd, dynCmd, projCmd, fbdCmd, chatCmd, askCmd, profileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if plotsDir != "" {
		cfg.PlotsDir = plotsDir
	}
	return cfg, nil
}

func buildTutor() (*tutor.Tutor, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	tut := tutor.New(cfg)
	tut.SetUser(userID)
	return tut, cfg, nil
}

func runCommand(input string) error {
	tut, _, err := buildTutor()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	rep, err := tut.Dispatch(ctx, input)
	if err != nil {
		return err
	}

	fmt.Println(rep.Text)
	if rep.Preview != "" {
		fmt.Println()
		fmt.Println(rep.Preview)
	}
	for _, art := range rep.Artifacts {
		fmt.Println("saved", art.Path)
	}
	return nil
}
