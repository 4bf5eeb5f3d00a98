package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     _     _ _ _               _ _       _
    | |__ (_) | |_____      __(_) |_ ___| |__
    | '_ \| | | / __\ \ /\ / /| | __/ __| '_ \
    | |_) | | | \__ \\ V  V / | | || (__| | | |
    |_.__/|_|_|_|___/ \_/\_/  |_|\__\___|_| |_|
    `
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(magenta(banner))
	fmt.Println(blue(fmt.Sprintf("billswitch (v%s)", versionStr)))
}
