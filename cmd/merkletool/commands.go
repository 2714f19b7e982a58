package main

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/config"
	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/items"
	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/logger"
	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/merkle"
	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/treeview"
)

// tool bundles what every command needs: config, logger, loader and output
type tool struct {
	cfg    *config.MerkleToolConfig
	logger *zap.Logger
	loader *items.Loader
	out    io.Writer
}

func newTool(c *cli.Context) (*tool, error) {
	cfg, err := parseToolConfig(c)
	if err != nil {
		return nil, err
	}

	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Verbose})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &tool{
		cfg:    cfg,
		logger: l,
		loader: items.NewLoader(osfs.Default, l),
		out:    c.App.Writer,
	}, nil
}

func (t *tool) close() {
	_ = t.logger.Sync()
}

// buildDir loads a directory and builds its tree
func (t *tool) buildDir(source config.DirSource) (*merkle.Tree, []items.Item, error) {
	loaded, err := t.loader.LoadDir(source.Dir, items.LoadOptions{
		MaxItems:      t.cfg.MaxItems,
		IncludeHidden: t.cfg.IncludeHidden,
	})
	if err != nil {
		return nil, nil, err
	}

	tree, err := merkle.Build(items.Contents(loaded))
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to build tree for %s", source.Dir)
	}

	t.logger.Sugar().Debugw("Built merkle tree",
		"dir", source.Dir,
		"leaves", tree.LeafCount(),
		"depth", tree.Depth(),
		"root", tree.RootDigest().Hex(),
	)
	return tree, loaded, nil
}

func rootCommand(c *cli.Context) error {
	t, err := newTool(c)
	if err != nil {
		return err
	}
	defer t.close()

	source := config.DirSource{Dir: c.String("dir")}
	tree, _, err := t.buildDir(source)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(t.out, tree.RootDigest().Hex())
	return nil
}

func showCommand(c *cli.Context) error {
	t, err := newTool(c)
	if err != nil {
		return err
	}
	defer t.close()

	source := config.DirSource{Dir: c.String("dir")}
	tree, loaded, err := t.buildDir(source)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(t.out, treeview.Render(tree, treeview.Options{
		FullDigest:   c.Bool("full"),
		DigestLength: config.DefaultDigestDisplayLength,
		LeafNames:    items.Names(loaded),
	}))
	return nil
}

func diffCommand(c *cli.Context) error {
	t, err := newTool(c)
	if err != nil {
		return err
	}
	defer t.close()

	req := &config.DiffRequest{
		Left:  config.DirSource{Dir: c.String("left")},
		Right: config.DirSource{Dir: c.String("right")},
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid diff request: %w", err)
	}

	left, leftItems, err := t.buildDir(req.Left)
	if err != nil {
		return err
	}
	right, rightItems, err := t.buildDir(req.Right)
	if err != nil {
		return err
	}

	diffs, stats, err := merkle.DiffWithStats(left, right)
	if err != nil {
		return errors.Wrapf(err, "failed to compare %s and %s", req.Left.Dir, req.Right.Dir)
	}
	t.logger.Sugar().Debugw("Compared merkle trees",
		"differing", len(diffs),
		"visited", stats.Visited,
		"leaves", left.LeafCount(),
	)

	for _, i := range diffs {
		_, _ = fmt.Fprintf(t.out, "%d\t%s\t%s\n", i, leftItems[i].Name, rightItems[i].Name)
	}
	if len(diffs) == 0 {
		_, _ = fmt.Fprintln(t.out, "identical")
	}

	if c.Bool("show") {
		_, _ = fmt.Fprint(t.out, treeview.Render(left, treeview.Options{
			DigestLength: config.DefaultDigestDisplayLength,
			LeafNames:    items.Names(leftItems),
			Highlight:    diffs,
		}))
	}
	return nil
}

func updateCommand(c *cli.Context) error {
	t, err := newTool(c)
	if err != nil {
		return err
	}
	defer t.close()

	req := &config.UpdateRequest{
		Source:  config.DirSource{Dir: c.String("dir")},
		Index:   c.Int("index"),
		Content: c.String("content"),
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid update request: %w", err)
	}

	tree, loaded, err := t.buildDir(req.Source)
	if err != nil {
		return err
	}
	if err := req.ValidateIndex(len(loaded)); err != nil {
		return err
	}

	before := tree.Clone()
	stats, err := tree.UpdateWithStats(req.Index, []byte(req.Content))
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", loaded[req.Index].Name)
	}
	t.logger.Sugar().Debugw("Updated merkle leaf",
		"index", req.Index,
		"name", loaded[req.Index].Name,
		"recomputed", stats.Recomputed,
		"stoppedEarly", stats.StoppedEarly,
	)

	diffs, err := merkle.Diff(before, tree)
	if err != nil {
		return errors.Wrap(err, "failed to compare updated tree")
	}

	_, _ = fmt.Fprintf(t.out, "old root: %s\n", before.RootDigest().Hex())
	_, _ = fmt.Fprintf(t.out, "new root: %s\n", tree.RootDigest().Hex())
	_, _ = fmt.Fprintf(t.out, "changed:  %v\n", diffs)
	return nil
}

func verifyCommand(c *cli.Context) error {
	t, err := newTool(c)
	if err != nil {
		return err
	}
	defer t.close()

	source := config.DirSource{Dir: c.String("dir")}
	tree, _, err := t.buildDir(source)
	if err != nil {
		return err
	}
	if err := tree.Verify(); err != nil {
		return errors.Wrapf(err, "tree for %s failed verification", source.Dir)
	}

	_, _ = fmt.Fprintf(t.out, "ok %d leaves, root %s\n", tree.LeafCount(), tree.RootDigest().Hex())
	return nil
}
