package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandshell/sandshell/commands"
	"github.com/sandshell/sandshell/core/config"
	"github.com/sandshell/sandshell/core/interp"
)

var (
	promptUserHost = color.New(color.FgGreen, color.Bold)
	promptPath     = color.New(color.FgBlue, color.Bold)
)

// prompt renders user@host:wd$ with the home directory shortened to ~.
func prompt(cfg *config.Config, session *interp.Session) string {
	wd := session.Dir()
	home := "/home/" + cfg.Username
	if wd == home {
		wd = "~"
	} else if strings.HasPrefix(wd, home+"/") {
		wd = "~" + strings.TrimPrefix(wd, home)
	}

	return fmt.Sprintf("%s:%s$ ",
		promptUserHost.Sprintf("%s@%s", cfg.Username, cfg.Hostname),
		promptPath.Sprint(wd))
}

// replCmd runs an interactive session on the terminal.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		session := interp.NewSession(interp.Options{
			Registry: commands.Default(),
			Config:   cfg,
			Logger:   newLogger(),
		})

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      prompt(cfg, session),
			HistoryFile: "",
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			rl.SetPrompt(prompt(cfg, session))
			line, err := rl.Readline()

			switch {
			case err == io.EOF:
				return nil

			case err == readline.ErrInterrupt:
				continue

			case err != nil:
				return err

			case strings.TrimSpace(line) == "exit":
				return nil

			case strings.TrimSpace(line) == "":
				continue

			default:
				fmt.Fprintln(cmd.OutOrStdout(), session.Execute(line))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
