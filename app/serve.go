package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"arcparse/api"
	"arcparse/util"
	"arcparse/xlog"
)

func Serve(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.Server.Addr = listenAddr
	}
	logger := xlog.WithComponent("serve")

	if !util.VerifyExists(modelFile) {
		return fmt.Errorf("model file does not exist: %s", modelFile)
	}
	data, err := ReadModel(modelFile)
	if err != nil {
		return err
	}
	parser, err := NewDepParser(data.Model, data.Vocab)
	if err != nil {
		return err
	}
	logger.Info().
		Str("model", modelFile).
		Int("relations", data.Vocab.Rels.Len()).
		Str("addr", cfg.Server.Addr).
		Msg("configuration")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg.Server, parser)
	return server.ListenAndServe(ctx)
}

func ServeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Serve,
		UsageLine: "serve <file options> [arguments]",
		Short:     "serves the parser over HTTP",
		Long: `
serves the parser over HTTP with JSON parse, health and metrics endpoints

	$ ./arcparse serve -m <model> [-addr :8090]

`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "model.b1", "Model file to read")
	cmd.Flag.StringVar(&listenAddr, "addr", "", "Listen address (overrides config)")
	return cmd
}
