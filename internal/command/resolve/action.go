package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-varexp/internal/config"
	"github.com/lwmacct/251207-go-pkg-varexp/pkg/propsrc"
	"github.com/lwmacct/251207-go-pkg-varexp/pkg/varexp"
)

func action(ctx context.Context, cmd *cli.Command) error {
	values := cmd.Args().Slice()
	if len(values) == 0 {
		return errors.New("no values to resolve")
	}

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	src, files, err := buildSources(cfg)
	if err != nil {
		return err
	}

	if !cfg.Watch {
		return resolveAll(values, src)
	}

	// watch 模式下首轮失败只记录日志，等待来源文件修复
	if err := resolveAll(values, src); err != nil {
		slog.Error("Resolution failed", "error", err)
	}

	return watch(ctx, cfg, values, files)
}

// configFromFlags 将 CLI flags 收拢为配置：--dir 的 name=path 条目解析为表。
func configFromFlags(cmd *cli.Command) (config.Config, error) {
	cfg := config.Config{
		Manifest: cmd.String("manifest"),
		Props:    cmd.StringSlice("props"),
		Defaults: cmd.StringSlice("defaults"),
		Dirs:     make(map[string]string),
		Watch:    cmd.Bool("watch"),
	}

	for _, entry := range cmd.StringSlice("dir") {
		name, path, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return config.Config{}, fmt.Errorf("invalid --dir entry %q, expected name=path", entry)
		}
		cfg.Dirs[name] = path
	}

	return cfg, nil
}

// buildSources 构建属性来源：清单先加载，显式 flags 合并在其上。
// 返回参与构建的全部文件路径，供 watch 模式监听。
func buildSources(cfg config.Config) (varexp.Sources, []string, error) {
	src := varexp.Sources{
		Props:    map[string]string{},
		Defaults: map[string]string{},
		Dirs:     map[string]string{},
	}
	var files []string

	if cfg.Manifest != "" {
		m, err := propsrc.LoadManifest(cfg.Manifest)
		if err != nil {
			return varexp.Sources{}, nil, err
		}

		baseDir := filepath.Dir(cfg.Manifest)
		src, err = m.Sources(baseDir)
		if err != nil {
			return varexp.Sources{}, nil, err
		}

		files = append(files, cfg.Manifest)
		for _, p := range append(m.Properties, m.Defaults...) {
			if !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			files = append(files, p)
		}
	}

	for _, p := range cfg.Props {
		loaded, err := propsrc.LoadFile(p)
		if err != nil {
			return varexp.Sources{}, nil, fmt.Errorf("load props %s: %w", p, err)
		}
		propsrc.Merge(src.Props, loaded)
		files = append(files, p)
	}

	for _, p := range cfg.Defaults {
		loaded, err := propsrc.LoadFile(p)
		if err != nil {
			return varexp.Sources{}, nil, fmt.Errorf("load defaults %s: %w", p, err)
		}
		propsrc.Merge(src.Defaults, loaded)
		files = append(files, p)
	}

	propsrc.Merge(src.Dirs, cfg.Dirs)

	return src, files, nil
}

func resolveAll(values []string, src varexp.Sources) error {
	for _, value := range values {
		resolved, err := varexp.Resolve(value, src)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", value, err)
		}
		fmt.Printf("%s = %s\n", value, resolved)
	}

	return nil
}

// watch 监听来源文件，写入或新建时重新加载并解析全部输入。
func watch(ctx context.Context, cfg config.Config, values, files []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			return fmt.Errorf("watch %s: %w", f, err)
		}
	}

	slog.Info("Watching property sources", "files", len(files))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Info("Property source changed", "path", event.Name)

			src, _, err := buildSources(cfg)
			if err != nil {
				slog.Error("Reload failed", "error", err)

				continue
			}
			if err := resolveAll(values, src); err != nil {
				slog.Error("Resolution failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "error", err)
		case <-sigChan:
			slog.Info("Shutting down")

			return nil
		case <-ctx.Done():
			return nil
		}
	}
}
