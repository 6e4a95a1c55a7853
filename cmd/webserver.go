package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/chemlab/pkg/envs"
	"github.com/narasux/chemlab/pkg/infras/database"
	"github.com/narasux/chemlab/pkg/logging"
	"github.com/narasux/chemlab/pkg/router"
	"github.com/narasux/chemlab/pkg/storage"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		storage.InitReactionData()
		storage.InitCompoundClient()

		// 数据库为可选依赖，未配置时点赞功能不可用
		if envs.MysqlHost != "" {
			if err := database.InitDBClient(context.Background()); err != nil {
				logging.GetSystemLogger().Fatalf("failed to init database: %s", err)
			}
		} else {
			color.Yellow("MYSQL_HOST not set, compound likes are disabled")
		}

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		router.InitRouter()
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
