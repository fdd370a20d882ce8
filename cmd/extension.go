package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables used to pass the global configuration to extensions.
// They are the ones Config reads.
const (
	EnvAssetsFile = "NW_ASSETS_FILE"
	EnvCurrency   = "NW_CURRENCY"
	EnvStyle      = "NW_STYLE"
	EnvVerbose    = "NW_VERBOSE"
)

// RunExtension attempts to find and execute an external nw-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	return runExtension(subcommand, args, os.Stdin, os.Stdout, os.Stderr)
}

func runExtension(subcommand string, args []string, stdin io.Reader, stdout, stderr io.Writer) (bool, int) {
	externalCmdName := "nw-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		verbosef("external command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvAssetsFile+"="+Global.AssetsFile,
		EnvCurrency+"="+Global.Currency,
		EnvStyle+"="+Global.Style,
		EnvVerbose+"="+strconv.FormatBool(Global.Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		log.Printf("error executing external command %q: %v", externalCmdName, err)
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
