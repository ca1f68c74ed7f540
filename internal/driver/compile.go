// Package driver runs the compilation pipeline: manifest to checked
// interfaces to generated binding text, with a disk cache for clean runs.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hidlgen/internal/ast"
	"hidlgen/internal/backend/cpp"
	"hidlgen/internal/backend/java"
	"hidlgen/internal/diag"
	"hidlgen/internal/loader"
	"hidlgen/internal/project"
	"hidlgen/internal/source"
)

// DefaultMaxDiagnostics caps per-file diagnostic output when the caller does
// not choose one.
const DefaultMaxDiagnostics = 100

// Options configures one Compile run.
type Options struct {
	// ManifestPath locates hidlgen.toml; empty means walk up from the
	// current directory.
	ManifestPath string
	// Jobs bounds loader parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps each file's diagnostic bag.
	MaxDiagnostics int
	// CacheDir overrides the per-user cache location. Tests use this.
	CacheDir string
	// NoCache disables the disk cache entirely.
	NoCache bool
	// Observer receives phase boundaries, for progress display.
	Observer PhaseObserver
}

// FileResult is the per-definition-file outcome.
type FileResult struct {
	Path   string
	FileID source.FileID
	Iface  *ast.Interface // nil when loading failed outright
	Bag    *diag.Bag
}

// GeneratedFile is one output of a backend run.
type GeneratedFile struct {
	Target  project.Target
	Name    string
	Content []byte
}

// Result is the outcome of a Compile run. Generated is empty when Bag holds
// errors.
type Result struct {
	Manifest  *project.Manifest
	FileSet   *source.FileSet
	Files     []FileResult
	Bag       *diag.Bag
	Generated []GeneratedFile
	CacheHit  bool
}

// Compile runs the full pipeline. Diagnostics describing broken input land
// in the result; the error return is reserved for environment failures.
func Compile(ctx context.Context, opts Options) (*Result, error) {
	manifest, err := resolveManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	fileSet := source.NewFileSet()
	res := &Result{
		Manifest: manifest,
		FileSet:  fileSet,
		Bag:      diag.NewBag(opts.MaxDiagnostics * max(1, len(manifest.DefinitionPaths()))),
	}
	var loadErr error
	opts.Observer.phase("load", func() {
		loadErr = loadDefinitions(ctx, fileSet, manifest, jobs, opts.MaxDiagnostics, res)
	})
	if loadErr != nil {
		return nil, loadErr
	}

	opts.Observer.phase("check", func() {
		checkInterfaces(res)
	})

	for i := range res.Files {
		res.Bag.Merge(res.Files[i].Bag)
	}
	res.Bag.Sort()
	if res.Bag.HasErrors() {
		return res, nil
	}

	var genErr error
	opts.Observer.phase("generate", func() {
		genErr = generate(opts, manifest, fileSet, res)
	})
	if genErr != nil {
		return nil, genErr
	}
	res.Bag.Sort()
	return res, nil
}

func resolveManifest(path string) (*project.Manifest, error) {
	if path != "" {
		return project.Load(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	found, ok, err := project.FindManifest(cwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no %s found in %s or any parent", project.ManifestName, cwd)
	}
	return project.Load(found)
}

// loadDefinitions reads every listed definition file into the FileSet, then
// parses them in parallel. File loading stays serial: the FileSet is not
// written concurrently.
func loadDefinitions(ctx context.Context, fileSet *source.FileSet,
	manifest *project.Manifest, jobs, maxDiagnostics int, res *Result) error {

	paths := manifest.DefinitionPaths()
	res.Files = make([]FileResult, len(paths))

	ids := make([]source.FileID, len(paths))
	loadErrors := make([]error, len(paths))
	for i, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		ids[i] = id
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(1, len(paths))))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			if loadErr := loadErrors[i]; loadErr != nil {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load definition file: "+loadErr.Error()))
				res.Files[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			sf := fileSet.Get(ids[i])
			iface, _ := loader.LoadInterface(sf, diag.BagReporter{Bag: bag})
			res.Files[i] = FileResult{Path: path, FileID: ids[i], Iface: iface, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	loader.ResolveAll(interfaces(res))
	return nil
}

// checkInterfaces runs the two-pass semantic check: every type resolves
// first, then every resolved type is validated.
func checkInterfaces(res *Result) {
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.Iface == nil {
			continue
		}
		if err := fr.Iface.Evaluate(); err != nil {
			addCheckError(fr.Bag, err)
			continue
		}
		if err := fr.Iface.Validate(); err != nil {
			addCheckError(fr.Bag, err)
		}
	}
}

func addCheckError(bag *diag.Bag, err error) {
	var ce *ast.CheckError
	if errors.As(err, &ce) {
		bag.Add(diag.NewError(ce.Code, ce.Span, ce.Msg))
		return
	}
	bag.Add(diag.NewError(diag.SemTypeNotValid, source.Span{}, err.Error()))
}

func interfaces(res *Result) []*ast.Interface {
	out := make([]*ast.Interface, 0, len(res.Files))
	for i := range res.Files {
		if res.Files[i].Iface != nil {
			out = append(out, res.Files[i].Iface)
		}
	}
	return out
}

// generate runs the configured backends over every checked interface,
// consulting the disk cache first. Only clean runs are cached.
func generate(opts Options, manifest *project.Manifest,
	fileSet *source.FileSet, res *Result) error {

	key := packageDigest(manifest, fileSet, res)

	var cache *DiskCache
	if !opts.NoCache {
		c, err := OpenDiskCache("hidlgen", opts.CacheDir)
		if err == nil {
			cache = c
		}
	}

	var cached CachePayload
	if hit, err := cache.Get(key, &cached); err == nil && hit {
		res.CacheHit = true
		res.Generated = make([]GeneratedFile, len(cached.Names))
		for i := range cached.Names {
			res.Generated[i] = GeneratedFile{
				Target:  project.Target(cached.Targets[i]),
				Name:    cached.Names[i],
				Content: cached.Content[i],
			}
		}
		return nil
	}

	for _, target := range manifest.Targets() {
		for _, iface := range interfaces(res) {
			switch target {
			case project.TargetCpp:
				g := cpp.NewGenerator(iface, manifest.Package.Name)
				res.Generated = append(res.Generated, GeneratedFile{
					Target:  target,
					Name:    g.FileName(),
					Content: []byte(g.Generate()),
				})
			case project.TargetJava:
				g := java.NewGenerator(iface, manifest.Package.Name)
				text, err := g.Generate()
				if err != nil {
					addCheckError(res.Bag, err)
					continue
				}
				res.Generated = append(res.Generated, GeneratedFile{
					Target:  target,
					Name:    g.FileName(),
					Content: []byte(text),
				})
			}
		}
	}

	if !res.Bag.HasErrors() {
		payload := &CachePayload{
			Schema:  cacheSchemaVersion,
			Package: manifest.Package.Name,
			Targets: make([]string, len(res.Generated)),
			Names:   make([]string, len(res.Generated)),
			Content: make([][]byte, len(res.Generated)),
		}
		for i, gf := range res.Generated {
			payload.Targets[i] = string(gf.Target)
			payload.Names[i] = gf.Name
			payload.Content[i] = gf.Content
		}
		_ = cache.Put(key, payload)
	}
	return nil
}

func packageDigest(manifest *project.Manifest, fileSet *source.FileSet, res *Result) Digest {
	digests := make([]Digest, 0, len(res.Files))
	for i := range res.Files {
		if sf, ok := fileSet.GetByPath(res.Files[i].Path); ok {
			digests = append(digests, HashContent(sf.Content))
		}
	}
	id := manifest.Package.Name + "@" + manifest.Package.Version
	for _, t := range manifest.Targets() {
		id += ":" + string(t)
	}
	return CombineDigests(id, digests...)
}

// WriteOutputs places generated files under the manifest's output directory,
// one subdirectory per target.
func WriteOutputs(manifest *project.Manifest, generated []GeneratedFile) error {
	for _, gf := range generated {
		dir := filepath.Join(manifest.OutputDir(), string(gf.Target))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, gf.Name), gf.Content, 0o644); err != nil {
			return err
		}
	}
	return nil
}
