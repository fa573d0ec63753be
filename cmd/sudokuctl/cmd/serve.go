package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpTransport "sudokucore/internal/transport/http"
	"sudokucore/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the solve/generate HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		if verbose {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}

		r := gin.Default()
		httpTransport.RegisterRoutes(r, cfg)

		fmt.Printf("listening on :%s\n", cfg.Port)
		return http.ListenAndServe(":"+cfg.Port, r)
	},
}
