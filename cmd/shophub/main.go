// ShopHub is a terminal storefront and admin console for the FakeStore demo
// API. The storefront browses, filters, and sorts the remote catalog and
// keeps a locally persisted shopping cart; the admin area adds CRUD over
// products, users, and remote carts behind a client-only demo session.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shophub/internal/api"
	"shophub/internal/cart"
	"shophub/internal/config"
	"shophub/internal/logging"
	"shophub/internal/query"
	"shophub/internal/session"
	"shophub/internal/state"
	"shophub/internal/types"
)

var (
	// Global flags
	verbose      bool
	stateDirFlag string
	apiURLFlag   string

	// Logger
	logger *zap.Logger

	// app is the wired application context, built once in
	// PersistentPreRunE and shared by every command.
	app *appContext
)

// appContext holds the singleton stores and caches. They are constructed
// once at startup and passed by reference, never reached through globals
// inside the packages themselves.
type appContext struct {
	cfg     *config.Config
	client  *api.Client
	state   *state.Store
	cart    *cart.Store
	session *session.Store
	watcher *config.Watcher

	// Read caches, keyed by query identity. Write commands bypass these
	// and must refetch the keys they touched; nothing invalidates
	// automatically.
	products   *query.Cache[[]types.Product]
	product    *query.Cache[*types.Product]
	categories *query.Cache[[]string]
	users      *query.Cache[[]types.User]
	user       *query.Cache[*types.User]
	carts      *query.Cache[[]types.RemoteCart]
	remoteCart *query.Cache[*types.RemoteCart]
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shophub",
	Short: "ShopHub - terminal storefront for the FakeStore demo API",
	Long: `ShopHub is a terminal storefront and admin console.

Browse the remote catalog, filter and sort products, and keep a shopping
cart that persists between sessions. The admin area (shophub admin) manages
products, users, and carts on the demo service behind a local demo login.

Run without arguments to start the interactive storefront.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		app, err = newAppContext()
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil && app.watcher != nil {
			_ = app.watcher.Close()
		}
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive storefront.
		return runBrowse(cmd, args)
	},
}

// newAppContext wires the application: config, logging, state, client,
// stores, and read caches.
func newAppContext() (*appContext, error) {
	stateDir := stateDirFlag
	if stateDir == "" {
		stateDir = os.Getenv("SHOPHUB_STATE_DIR")
	}
	if stateDir == "" {
		stateDir = config.DefaultStateDir()
	}

	cfgPath := filepath.Join(stateDir, "config.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.State.Dir = stateDir
	if apiURLFlag != "" {
		cfg.API.BaseURL = apiURLFlag
	}

	if err := logging.Initialize(stateDir); err != nil {
		return nil, err
	}
	logging.Boot("ShopHub %s starting, api=%s", cfg.Version, cfg.API.BaseURL)

	st, err := state.NewStore(stateDir)
	if err != nil {
		return nil, err
	}

	cartStore, loadResult := cart.NewStore(st)
	if loadResult == cart.DiscardedCorrupt {
		logger.Warn("persisted cart was corrupt; starting with an empty cart")
	}

	a := &appContext{
		cfg:     cfg,
		client:  api.New(cfg.API.BaseURL, cfg.GetAPITimeout()),
		state:   st,
		cart:    cartStore,
		session: session.NewStore(st),

		products:   query.NewCache[[]types.Product](),
		product:    query.NewCache[*types.Product](),
		categories: query.NewCache[[]string](),
		users:      query.NewCache[[]types.User](),
		user:       query.NewCache[*types.User](),
		carts:      query.NewCache[[]types.RemoteCart](),
		remoteCart: query.NewCache[*types.RemoteCart](),
	}

	// Best effort: a session survives fine without live config reload.
	if w, err := config.Watch(cfgPath, nil); err == nil {
		a.watcher = w
	} else {
		logger.Debug("config watcher unavailable", zap.Error(err))
	}

	return a, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&stateDirFlag, "state-dir", "", "state directory (default ~/.shophub)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "override the remote API base URL")

	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints the version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ShopHub version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ShopHub %s\n", app.cfg.Version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
