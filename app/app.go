// Package app wires the command line interface.
package app

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/conf"
	"arcparse/util"
	"arcparse/xlog"
)

const NumCPUsFlag = "cpus"

var AppCommands []*commander.Command = []*commander.Command{
	TrainCmd(),
	ParseCmd(),
	EvalCmd(),
	TraceCmd(),
	ServeCmd(),
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0] + " <command> [arguments]",
		Short:       "a greedy arc-standard dependency parser",
		Subcommands: AppCommands,
		Flag:        *flag.NewFlagSet("arcparse", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NumCPUsFlag, 0, "Max CPUs to use (runtime.GOMAXPROCS); 0 = all")
		app.Flag.StringVar(&configFile, "c", "", "YAML configuration file")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	logger := xlog.WithComponent("app")
	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		logger.Warn().Int("max", maxCPUs).Msg("number of CPUs capped to all available")
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}
	return wrapped
}

// DefaultConfigFile is searched for in the working directory and the user
// config directory when the -c flag is not given.
const DefaultConfigFile = "arcparse.yaml"

// loadConfig reads the configuration file named by the shared -c flag and
// configures logging from it.
func loadConfig() (*conf.Config, error) {
	path := configFile
	if path == "" {
		dirs := []string{"."}
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, filepath.Join(configDir, "arcparse"))
		}
		if located, exists := util.LocateFile(DefaultConfigFile, dirs); exists {
			path = located
		}
	}
	cfg, err := conf.Load(path)
	if err != nil {
		return nil, err
	}
	xlog.Configure(xlog.Config{Level: cfg.Log.Level})
	return cfg, nil
}
