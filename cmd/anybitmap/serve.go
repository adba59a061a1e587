package main

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin and stdout",
	Long: `Serve bitmap tools over the Model Context Protocol (JSON-RPC 2.0, one
request per line). Configure it as a stdio server in your MCP client.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var ocrLanguage string

func init() {
	serveCmd.Flags().StringVar(&ocrLanguage, "ocr-language", "", "default Tesseract language (overrides ANYBITMAP_OCR_LANGUAGE)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if ocrLanguage != "" {
		cfg.OCRLanguage = ocrLanguage
	}

	srv := server.New(cfg)
	err := srv.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		if cfg.Debug() {
			log.Printf("Server stopped")
		}
		return nil
	}
	return err
}
