package commands

import (
	"fmt"
	"strings"

	"github.com/sandshell/sandshell/core/vos"
)

// Cowsay is not documented anywhere. Those who know, know.
func Cowsay(virtOS vos.VOS) int {
	message := strings.Join(virtOS.Args()[1:], " ")
	if message == "" {
		message = "moo"
	}

	w := virtOS.Stdout()
	border := strings.Repeat("-", len(message)+2)
	fmt.Fprintf(w, " %s\n", border)
	fmt.Fprintf(w, "< %s >\n", message)
	fmt.Fprintf(w, " %s\n", border)
	fmt.Fprint(w, `        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||
`)
	return 0
}

var _ vos.ProcessFunc = Cowsay

func init() {
	register(&Command{
		Name:      "cowsay",
		Use:       "cowsay [MESSAGE]...",
		Short:     "Have a cow say something.",
		EasterEgg: true,
		Proc:      Cowsay,
	})
}
