package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"checkcachet/internal/checker"
	"checkcachet/internal/config"
	"checkcachet/internal/probe"
	"checkcachet/internal/status"
)

var (
	version = config.Version
	appName = "check_cachet"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run コマンドを実行して終了コードを返す
// 引数エラーもUNKNOWNとしてstdoutに出す
func run(args []string, stdout, stderr io.Writer) int {
	exitCode := status.Unknown.ExitCode()

	cmd := newRootCmd(stdout, stderr, &exitCode)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(stdout, "UNKNOWN: %v\n", err)
		return status.Unknown.ExitCode()
	}
	return exitCode
}

func newRootCmd(stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	d := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   appName + " --url <status page>",
		Short: "Cachetのステータスページを監視プラグインとしてチェックする",
		Long: `Cachetのステータスページを取得し、各コンポーネントのバッジから
OK / WARNING / CRITICAL / UNKNOWN を判定します。

終了コード: 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN

例:
  check_cachet -u status.example.com
  check_cachet -u https://status.example.com -t 5s -v`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}

			p := probe.New(checker.NewChecker(cfg), status.DefaultTable())
			outcome := p.Run(cmd.Context(), cfg.URL)

			if cfg.Verbose {
				printVerbose(stderr, cfg, outcome)
			}

			fmt.Fprintln(stdout, outcome.Report.Text)
			*exitCode = outcome.Report.ExitCode()
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP("url", "u", "", "CachetのURL（スキーマ省略時は https://）")
	flags.IntP("warning", "w", d.Warning, "WARNINGしきい値（互換性のため受け付けるが未使用）")
	flags.IntP("critical", "c", d.Critical, "CRITICALしきい値（互換性のため受け付けるが未使用）")
	flags.DurationP("timeout", "t", d.Timeout, "リクエストのタイムアウト")
	flags.BoolP("insecure", "k", d.Insecure, "SSL証明書の検証をスキップ")
	flags.BoolP("verbose", "v", d.Verbose, "診断情報をstderrに出力")
	flags.Bool("no-color", d.NoColor, "カラー出力を無効化")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
