package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/jwst-datamodels/nirspec-flat/api/v1alpha1"
	"github.com/jwst-datamodels/nirspec-flat/internal/config"
	"github.com/jwst-datamodels/nirspec-flat/internal/logging"
	"github.com/jwst-datamodels/nirspec-flat/pkg/datamodel"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dqflags"
	"github.com/jwst-datamodels/nirspec-flat/pkg/dynamicdq"
)

// commandContext carries state shared by every subcommand. It is populated
// by the root command's PersistentPreRunE.
type commandContext struct {
	configPath string
	v          *viper.Viper

	cfg       *config.Config
	logger    logr.Logger
	mnemonics dqflags.Mnemonics
	store     *datamodel.FileStore
}

func newRootCmd() *cobra.Command {
	cc := &commandContext{v: config.New()}

	cmd := &cobra.Command{
		Use:           "nrsflat",
		Short:         "Inspect and convert NIRSpec flat-field reference files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cc.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cc.configPath, "config", "", "Path to a YAML or TOML config file")
	flags.String("log-level", "", "Log level (error, warn, info, debug, trace)")
	flags.String("format", "", "Document format written by the tool (yaml or json)")
	_ = cc.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = cc.v.BindPFlag("format", flags.Lookup("format"))

	cmd.AddCommand(
		newSchemasCommand(cc),
		newInspectCommand(cc),
		newValidateCommand(cc),
		newPromoteCommand(cc),
		newRemaskCommand(cc),
	)
	return cmd
}

func (cc *commandContext) load(cmd *cobra.Command) error {
	cfg, err := config.Load(cc.v, cc.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogDevelopment, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	mnemonics, err := config.ParseFlagAliases(cfg.FlagAliases).Mnemonics()
	if err != nil {
		return fmt.Errorf("flag aliases: %w", err)
	}

	cc.cfg = cfg
	cc.logger = logger
	cc.mnemonics = mnemonics
	cc.store = cfg.Store()
	cmd.SetContext(ctrl.LoggerInto(cmd.Context(), logger))
	return nil
}

// mapper returns a DQ mapper using the configured mnemonics.
func (cc *commandContext) mapper(opts ...dynamicdq.Option) *dynamicdq.Mapper {
	base := []dynamicdq.Option{
		dynamicdq.WithMnemonics(cc.mnemonics),
		dynamicdq.WithLogger(cc.logger.WithName("dynamicdq")),
	}
	return dynamicdq.NewMapper(append(base, opts...)...)
}

// stampMeta fills author and pedigree from the config where unset.
func (cc *commandContext) stampMeta(meta *v1alpha1.ReferenceFileMeta) {
	if meta.Author == "" {
		meta.Author = cc.cfg.Author
	}
	if meta.Pedigree == "" {
		meta.Pedigree = cc.cfg.Pedigree
	}
}
