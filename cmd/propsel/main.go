/*
Command propsel checks property injection for a markup document.

Components and the selectors of their injected properties are read from a
configuration file and from props structs in Go packages. The command walks
a document and reports which element receives which property of a component.

	propsel -c propsel.yml -src ./components -html page.html -component LoginForm

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/npillmayer/propsel/dom"
	"github.com/npillmayer/propsel/dom/domdbg"
	"github.com/npillmayer/propsel/internal/config"
	"github.com/npillmayer/propsel/internal/log"
	"github.com/npillmayer/propsel/registry"
	"github.com/npillmayer/propsel/registry/scan"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

var errNoDocument = errors.New("no markup document given")

type options struct {
	configPath string
	sources    []string
	htmlPath   string
	component  string
	dotPath    string
	values     map[string]string
	printTree  bool
	dump       bool
	debug      bool
}

type sourceList []string

func (s *sourceList) String() string { return strings.Join(*s, ",") }

func (s *sourceList) Set(dir string) error {
	*s = append(*s, dir)
	return nil
}

// valueMap collects "property=value" pairs.
type valueMap map[string]string

func (m valueMap) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (m valueMap) Set(pair string) error {
	k, v, ok := strings.Cut(pair, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected property=value, have '%s'", pair)
	}
	m[k] = v
	return nil
}

func main() {
	opts := options{values: make(map[string]string)}
	var sources sourceList
	flag.StringVar(&opts.configPath, "c", "", "The location of the configuration file.")
	flag.Var(&sources, "src", "A Go package directory to scan for props structs. May be repeated.")
	flag.StringVar(&opts.htmlPath, "html", "", "The markup document to inject properties into.")
	flag.StringVar(&opts.component, "component", "", "The component whose properties are injected.")
	flag.StringVar(&opts.dotPath, "dot", "", "Write the document tree with its injections in GraphViz format to this file.")
	flag.Var(valueMap(opts.values), "set", "Set an attribute property to a value at every element it is injected into, e.g. Disabled=true. May be repeated.")
	flag.BoolVar(&opts.printTree, "tree", false, "Print the document tree with sibling positions.")
	flag.BoolVar(&opts.dump, "dump", false, "Print the registered components and their selectors as YAML.")
	flag.BoolVar(&opts.debug, "debug", false, "Prints debug logs.")
	flag.Parse()
	opts.sources = sources

	if err := run(opts, os.Stdout, os.Stderr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(opts options, stdout, stderr io.Writer) error {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	level := conf.Level()
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := log.InitializeDefaultLogger(stderr, level)
	ctx := log.ContextWithLogger(context.Background(), logger)

	reg := registry.New()
	if err := conf.Register(reg); err != nil {
		return err
	}
	if err := registerSources(ctx, reg, append(conf.Sources, opts.sources...)); err != nil {
		return err
	}

	if opts.dump {
		if err := dumpRegistry(reg, stdout); err != nil {
			return err
		}
	}
	if opts.htmlPath == "" {
		if opts.component != "" {
			return errNoDocument
		}
		return nil
	}
	doc, err := readDocument(opts.htmlPath)
	if err != nil {
		return err
	}
	if opts.printTree {
		fmt.Fprint(stdout, domdbg.Dump(doc))
	}
	component := opts.component
	if component == "" {
		component = conf.Component
	}
	if component == "" {
		return nil
	}
	ctx = log.ContextWithLogger(ctx, logger.With(slog.String("component", component)))
	injections, err := inject(ctx, doc, reg, component, opts.values)
	if err != nil {
		return err
	}
	report(injections, stdout)
	if opts.dotPath != "" {
		return writeGraph(ctx, doc, injections, opts.dotPath)
	}
	return nil
}

func registerSources(ctx context.Context, reg *registry.Registry, dirs []string) error {
	logger := log.LoggerFromContext(ctx)
	for _, dir := range dirs {
		names, err := scan.Register(reg, dir)
		if registry.IsAlreadyRegistered(err) {
			return fmt.Errorf("%w; a component of %s is declared more than once", err, dir)
		} else if err != nil {
			return err
		}
		logger.Debug("scanned sources", slog.String("dir", dir), slog.Int("components", len(names)))
	}
	logger.Info(fmt.Sprintf("%d components registered", len(reg.Components())))
	return nil
}

// inject finds the injections of a component and applies attribute values.
func inject(ctx context.Context, doc *dom.Node, reg *registry.Registry, component string,
	values map[string]string) ([]dom.Injection, error) {
	logger := log.LoggerFromContext(ctx)
	injections, err := dom.Inject(doc, reg, component)
	if registry.IsUnknownComponent(err) {
		if s := suggest(component, reg.Components()); s != "" {
			return nil, fmt.Errorf("%w; did you mean '%s'?", err, s)
		}
	}
	if err != nil {
		return nil, err
	}
	logger.Info("injected properties", slog.Int("injections", len(injections)))
	if len(values) > 0 {
		n := dom.Apply(injections, values)
		logger.Debug("applied attribute values", slog.Int("attributes", n))
	}
	return injections, nil
}

func readDocument(path string) (*dom.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

func writeGraph(ctx context.Context, doc *dom.Node, injections []dom.Injection, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = domdbg.ToGraphViz(doc, f, injections); err != nil {
		f.Close()
		return err
	}
	log.LoggerFromContext(ctx).Info(fmt.Sprintf("wrote document graph to %s", path))
	return f.Close()
}

func dumpRegistry(reg *registry.Registry, w io.Writer) error {
	out := struct {
		Components []config.Component `yaml:"components"`
	}{config.FromRegistry(reg)}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("error while marshalling. %w", err)
	}
	return enc.Close()
}

func report(injections []dom.Injection, w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Element", "Property", "Inject As", "Kind", "Value"})
	for _, inj := range injections {
		value := ""
		if inj.Property.Kind == registry.Attribute {
			value, _ = inj.Node.Payload.Attr(inj.Property.Target())
		}
		table.Append([]string{inj.Path, inj.Property.Name, inj.Property.Target(), inj.Property.Kind.String(), value})
	}
	table.SetFooter([]string{"", "", "", "total", fmt.Sprint(len(injections))})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.Render()
}

// suggest returns the known name closest to name, if any is close enough
// to be a likely typo.
func suggest(name string, known []string) string {
	best, bestDist := "", len(name)/2+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(k)); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
