package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vigevenoj/kube-java-diagnostics/config"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/batch"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/collector"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/executor"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/locator"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/stores/local"
	"github.com/vigevenoj/kube-java-diagnostics/pkg/utils"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kube-java-diagnostics <namespace>",
		Short: "Collect JVM diagnostics from pods in a cluster",
		Long: `
Collect thread dumps and heap class histograms from Java applications
running in Kubernetes pods. The JVM pid is looked up inside each
container, so there is no need to exec in and hunt for it by hand.
`,
		Args:         cobra.ExactArgs(1),
		RunE:         RunRootCmd,
		SilenceUsage: true,
	}

	cmd.Flags().String("label", config.DefaultLabelSelector, "filter pods in the namespace by this label selector")
	cmd.Flags().String("pod", "", "collect from this single pod instead of a label-selected batch")
	cmd.Flags().String("container", config.DefaultContainer, "name of the container in each pod")
	cmd.Flags().String("main", config.DefaultMainClass, "substring of the JVM main class to look for")
	cmd.Flags().String("output-dir", config.DefaultOutputDir, "directory the diagnostic files are written to")

	return cmd
}

func RunRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	kubeClient, restConfig, err := utils.GetClient()
	if err != nil {
		return err
	}

	exec := executor.NewKube(kubeClient, restConfig)
	runner := batch.New(
		kubeClient,
		locator.New(exec, cfg.MainClass),
		collector.New(exec),
		local.New(cfg.OutputDir),
		cfg,
	)

	logrus.Printf("Collecting diagnostics in namespace %s", cfg.Namespace)
	_, err = runner.Run(cmd.Context())
	return err
}

// loadConfig merges the optional config file with the command flags.
// Flags win over file values.
func loadConfig(cmd *cobra.Command, namespace string) (*config.Config, error) {
	cfg := &config.Config{}

	if path := viper.ConfigFileUsed(); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = cfg.Load(file)
		file.Close()
		if err != nil {
			return nil, err
		}
	}

	cfg.Namespace = namespace

	flags := cmd.Flags()
	if s, _ := flags.GetString("label"); flags.Changed("label") || cfg.LabelSelector == "" {
		cfg.LabelSelector = s
	}
	if s, _ := flags.GetString("pod"); flags.Changed("pod") {
		cfg.Pod = s
	}
	if s, _ := flags.GetString("container"); flags.Changed("container") || cfg.Container == "" {
		cfg.Container = s
	}
	if s, _ := flags.GetString("main"); flags.Changed("main") || cfg.MainClass == "" {
		cfg.MainClass = s
	}
	if s, _ := flags.GetString("output-dir"); flags.Changed("output-dir") || cfg.OutputDir == "" {
		cfg.OutputDir = s
	}

	return cfg, nil
}
