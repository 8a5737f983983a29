package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aodysseos/ai-dashboard/internal/uploader"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "upload API base URL")
	concurrency := flag.Int("concurrency", 5, "maximum simultaneous file uploads")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: uploader [-server URL] [-concurrency N] FILE...")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := uploader.NewClient(*serverURL)
	orch := uploader.New(client, uploader.Options{
		Concurrency: *concurrency,
		OnProgress: func(taskID string, percent int) {
			logger.Info("progress", "task", taskID, "percent", percent)
		},
	}, logger)

	var sources []uploader.Source
	var open []*os.File
	defer func() {
		for _, f := range open {
			f.Close()
		}
	}()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			logger.Error("failed to open file", "path", path, "error", err)
			os.Exit(1)
		}
		open = append(open, f)

		info, err := f.Stat()
		if err != nil {
			logger.Error("failed to stat file", "path", path, "error", err)
			os.Exit(1)
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		sources = append(sources, uploader.Source{
			Name:        filepath.Base(path),
			Size:        info.Size(),
			ContentType: contentType,
			Content:     f,
		})
	}

	for _, rejection := range orch.Add(sources...) {
		fmt.Fprintln(os.Stderr, rejection)
	}

	orch.UploadAll(ctx)

	failed := 0
	for _, task := range orch.Tasks() {
		switch task.Status {
		case uploader.StatusSuccess:
			fmt.Printf("ok\t%s\t%s\n", task.Name, task.StorageKey)
		case uploader.StatusError:
			fmt.Printf("failed\t%s\t%s\n", task.Name, task.Err)
			failed++
		default:
			fmt.Printf("%s\t%s\n", task.Status, task.Name)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
