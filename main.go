// langsync — Minecraft language catalog synchronizer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/mcmeta/langsync/catalog"
	"github.com/mcmeta/langsync/config"
	"github.com/mcmeta/langsync/i18n"
	"github.com/mcmeta/langsync/localename"
	"github.com/mcmeta/langsync/merge"
	"github.com/mcmeta/langsync/mojang"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "langsync",
		Short: "Sync the Minecraft language metadata catalog",
		Long: `langsync — Minecraft language catalog synchronizer.

Resolves the latest stable release from the version manifest, lists the
per-locale language files published for it, and merges each locale's
metadata (locale code, native name/region, derived English name/region)
into the languages.json catalog.

Manually curated English names survive syncs: mark them in the catalog
with "override_name": true or "override_region": true.

Commands:
  sync        Fetch upstream language data and update the catalog
  status      Show a summary of the current catalog
  version     Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Directory holding .langsync.yaml and the catalog")

	root.AddCommand(
		newSyncCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("langsync version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// sync
// ---------------------------------------------------------------------------

func newSyncCmd() *cobra.Command {
	var (
		catalogPath string
		gameVersion string
		dryRun      bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch upstream language data and update the catalog",
		Long: `Fetch upstream language data and update the catalog.

Resolves the latest stable release (or uses --game-version), lists its
language files, fetches each one, derives English names from the locale
code, and merges the result into the catalog. Per-file failures are
logged and skipped; the catalog is written once at the end.

Existing records are never deleted, and english.name/english.region
values marked with override flags are never replaced.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSync(syncArgs{
				catalogPath: catalogPath,
				gameVersion: gameVersion,
				dryRun:      dryRun,
				verbose:     verbose,
			})
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file path (default from .langsync.yaml or languages.json)")
	cmd.Flags().StringVar(&gameVersion, "game-version", "", "Sync a specific release instead of the latest")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List the language files that would be processed, then stop")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Log resolved English names per record")

	return cmd
}

type syncArgs struct {
	catalogPath string
	gameVersion string
	dryRun      bool
	verbose     bool
}

func runSync(a syncArgs) {
	cfg, err := config.Load(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	client := mojang.NewClient()
	if cfg.ManifestURL != "" {
		client.ManifestURL = cfg.ManifestURL
	}
	if cfg.AssetRoot != "" {
		client.AssetRoot = cfg.AssetRoot
	}
	client.Exclude = append(client.Exclude, cfg.Exclude...)

	catalogPath := a.catalogPath
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath(rootDir)
	}

	// Setup signal handling for graceful cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		logWarning("Interrupted, saving progress...")
		cancel()
	}()

	gameVersion := a.gameVersion
	if gameVersion == "" {
		logInfo(i18n.T("Fetching latest release version..."))
		gameVersion, err = client.LatestRelease(ctx)
		if err != nil {
			logError("%v", err)
			os.Exit(1)
		}
	}
	logInfo(i18n.T("Syncing language data for version %s"), gameVersion)

	files, err := client.LangFiles(ctx, gameVersion)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	logInfo("Found %d language files", len(files))

	if a.dryRun {
		for _, file := range files {
			fmt.Fprintf(os.Stderr, "  %s\n", file)
		}
		return
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if len(cat) > 0 {
		logInfo(i18n.T("Loaded existing catalog %s (%d records)"), catalogPath, len(cat))
	} else {
		logInfo(i18n.T("No existing catalog found, starting fresh."))
	}

	synced, failures := syncCatalog(ctx, client, gameVersion, files, cat, a.verbose)

	if err := catalog.Save(catalogPath, cat); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	logSuccess(i18n.T("Saved %s (%d records)"), catalogPath, len(cat))

	if len(failures) > 0 {
		logWarning(i18n.T("Summary: %d synced, %d failed"), synced, len(failures))
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", f.key, f.err)
		}
	} else {
		logInfo(i18n.T("Summary: %d synced, %d failed"), synced, 0)
	}

	logSuccess(i18n.T("Sync complete!"))
}

// syncFailure records one skipped language file for the end-of-run summary.
type syncFailure struct {
	key string
	err error
}

// syncCatalog fetches every listed language file and merges it into cat.
// Per-file failures are warned about and collected; they never stop the
// loop. Cancelling ctx stops between files.
func syncCatalog(ctx context.Context, client *mojang.Client, gameVersion string, files []string, cat catalog.Catalog, verbose bool) (int, []syncFailure) {
	var failures []syncFailure
	synced := 0

	for i, file := range files {
		if ctx.Err() != nil {
			break
		}
		key := localeKey(file)

		info, err := client.FetchLang(ctx, file, gameVersion)
		if err != nil {
			logWarning(i18n.T("Failed to process %s: %v"), file, err)
			failures = append(failures, syncFailure{key: key, err: err})
			continue
		}

		merge.Apply(cat, key, newRecord(info))
		synced++

		logInfo("[%d/%d] %s (%s)", i+1, len(files), key, info.Code)
		if verbose {
			rec := cat[key]
			logInfo("  %s -> %s (%s)", rec.Native.Name, rec.English.Name, rec.English.Region)
		}
	}

	return synced, failures
}

// newRecord builds a catalog record from freshly fetched metadata.
// Fresh records never carry override flags.
func newRecord(info mojang.LangInfo) catalog.Record {
	name, region := localename.Resolve(info.Code)
	return catalog.Record{
		ISOCode: info.Code,
		Native:  catalog.Native{Name: info.Name, Region: info.Region},
		English: catalog.English{Name: name, Region: region},
	}
}

// localeKey derives the catalog key from a language file name.
func localeKey(file string) string {
	return strings.TrimSuffix(file, ".json")
}

// ---------------------------------------------------------------------------
// status (read-only: catalog summary)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the current catalog",
		Long: `Show the catalog's records: locale key, ISO code, native and
English names. Overridden English values are marked with *. Does not
touch the network or modify any files.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStatus()
		},
	}

	return cmd
}

func runStatus() {
	cfg, err := config.Load(rootDir)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	catalogPath := cfg.CatalogPath(rootDir)
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	if len(cat) == 0 {
		logInfo("Catalog %s is empty. Run 'langsync sync' first.", catalogPath)
		return
	}

	keys := make([]string, 0, len(cat))
	for key := range cat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(os.Stderr, "\n%sCatalog%s %s\n", colorBlue, colorReset, catalogPath)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 78))
	fmt.Fprintf(os.Stderr, "%-12s %-10s %-22s %-18s %-14s\n", "Key", "ISO", "Native", "English", "Region")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 78))

	overridden := 0
	for _, key := range keys {
		rec := cat[key]

		englishName := rec.English.Name
		if flagSet(rec.English.OverrideName) {
			englishName += "*"
		}
		englishRegion := rec.English.Region
		if flagSet(rec.English.OverrideRegion) {
			englishRegion += "*"
		}
		if flagSet(rec.English.OverrideName) || flagSet(rec.English.OverrideRegion) {
			overridden++
		}

		fmt.Fprintf(os.Stderr, "%-12s %-10s %-22s %-18s %-14s\n",
			key, rec.ISOCode, rec.Native.Name, englishName, englishRegion)
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 78))
	fmt.Fprintf(os.Stderr, "Total: %d records", len(cat))
	if overridden > 0 {
		fmt.Fprintf(os.Stderr, ", %d with manual overrides (*)", overridden)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr)
}

func flagSet(f *bool) bool {
	return f != nil && *f
}
