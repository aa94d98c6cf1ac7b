package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sjc5/routesplit/pkg/colorlog"
	"github.com/sjc5/routesplit/pkg/envutil"
	"github.com/sjc5/routesplit/pkg/routetree"
	"github.com/sjc5/routesplit/pkg/splitpath"
	"github.com/sjc5/routesplit/pkg/tsgen"
)

// Usage:
//
//	go run ./scripts/routesplit_play "/wp/v2/posts/(?P<id>[\d]+)" ...
//	printf '/wp/v2/posts\n' | go run ./scripts/routesplit_play
func main() {
	level := slog.LevelInfo
	if envutil.GetBool("ROUTESPLIT_DEBUG", false) {
		level = slog.LevelDebug
	}
	log := colorlog.NewWithLevel("[routesplit]", level)
	slog.SetDefault(log)

	namespace := envutil.GetStr("ROUTESPLIT_NAMESPACE", "wp/v2")
	splitter := splitpath.NewSplitter(envutil.GetInt("ROUTESPLIT_CACHE_SIZE", splitpath.DefaultCacheSize))

	paths := os.Args[1:]
	if len(paths) == 0 {
		var err error
		if paths, err = readLines(os.Stdin); err != nil {
			log.Error("failed to read stdin", "error", err)
			os.Exit(1)
		}
	}

	routes := make([]routetree.Route, 0, len(paths))
	for _, p := range paths {
		fmt.Printf("%s => %q\n", p, splitter.Split(p))
		routes = append(routes, routetree.Route{Namespace: namespace, Path: p, Methods: []string{"GET"}})
	}
	fmt.Println()

	tree, err := routetree.Build(routes, &routetree.Options{Logger: log, Splitter: splitter})
	if err != nil {
		log.Error("failed to build route tree", "error", err)
		os.Exit(1)
	}
	tree.Print(os.Stdout)

	if out := envutil.GetStr("ROUTESPLIT_TS_OUT", ""); out != "" {
		if err := tsgen.GenerateToFile(tree, out); err != nil {
			log.Error("failed to write typescript", "error", err)
			os.Exit(1)
		}
		log.Info("wrote typescript", "path", out)
	}
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
