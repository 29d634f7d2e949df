package cmd

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
)

// Environment variables handed to extensions, mirroring the global flags.
// They are the same variables the configuration loader reads, so an
// extension calling tkr back sees the parent's effective settings.
const (
	EnvConfig  = "TICKREPORT_CONFIG"
	EnvStore   = "TICKREPORT_STORE"
	EnvRepo    = "TICKREPORT_REPO"
	EnvLog     = "TICKREPORT_LOG"
	EnvTickers = "TICKREPORT_TICKERS"
)

// RunExtension attempts to find and execute an external tkr-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and
// executed, and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "tkr-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables. Flags left at their
	// empty default are not exported, so values inherited from the
	// environment survive.
	env := append(os.Environ(), EnvConfig+"="+*configPath)
	for _, kv := range []struct{ key, value string }{
		{EnvStore, *storeName},
		{EnvRepo, *repoDir},
		{EnvLog, *logPath},
		{EnvTickers, *tickerGlob},
	} {
		if kv.value != "" {
			env = append(env, kv.key+"="+kv.value)
		}
	}
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}

	return true, 0
}
