// Command nearshopd runs the shop discovery engine as an interactive
// terminal client against a shop backend (for local development, the
// shopstubd server).
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"nearshop/config"
	"nearshop/internal/delivery/cli"
	"nearshop/internal/domain/entity"
	"nearshop/internal/domain/repository"
	"nearshop/internal/infra/api"
	"nearshop/internal/infra/geo"
	logs "nearshop/internal/infra/log"
	"nearshop/internal/usecase"
	"nearshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type appParams struct {
	fx.In
	fx.Shutdowner

	Config    *config.Config
	Logger    *slog.Logger
	Sessions  repository.SessionRepository
	Discovery usecase.DiscoveryUsecase
}

func main() {
	fx.New(
		fx.NopLogger,
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runEngine,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		geo.NewLocationProvider,
		api.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewShopRepository,
			api.NewSessionRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLocatorService,
			impl.NewEnrichmentService,
			impl.NewSubscriptionService,
			impl.NewDiscoveryService,
		),
	)
}

func runEngine(ctx context.Context, params appParams) {
	go func() {
		engine := &engine{
			cfg:       params.Config,
			logger:    params.Logger,
			sessions:  params.Sessions,
			discovery: params.Discovery,
		}
		engine.run(ctx)

		if err := params.Shutdown(); err != nil {
			params.Logger.Error("Failed to shut down", slog.Any("error", err))
		}
	}()
}

type engine struct {
	cfg       *config.Config
	logger    *slog.Logger
	sessions  repository.SessionRepository
	discovery usecase.DiscoveryUsecase

	session *entity.Session
}

func (e *engine) run(ctx context.Context) {
	e.login(ctx)

	if err := e.discovery.Load(ctx, e.session); err != nil {
		e.logger.Warn("initial load failed", slog.Any("error", err))
	}
	e.render()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if !e.dispatch(ctx, scanner.Text()) {
			return
		}
		fmt.Print("> ")
	}
}

// login signs in with the configured credentials, if any. The engine keeps
// browsing unauthenticated when login fails.
func (e *engine) login(ctx context.Context) {
	if e.cfg.Auth == nil {
		return
	}

	session, err := e.sessions.Login(ctx, e.cfg.Auth.Email, e.cfg.Auth.Password)
	if err != nil {
		e.logger.Warn("login failed", slog.Any("error", err))

		return
	}

	e.session = session
	e.logger.Info("logged in", slog.String("email", session.Email))
}

// dispatch executes one command line. It returns false when the engine
// should exit.
func (e *engine) dispatch(ctx context.Context, line string) bool {
	command, argument, _ := strings.Cut(strings.TrimSpace(line), " ")

	var err error
	switch command {
	case "":
		return true
	case "quit", "exit":
		return false
	case "reload":
		err = e.discovery.Load(ctx, e.session)
	case "radius":
		var radius int
		radius, err = strconv.Atoi(strings.TrimSpace(argument))
		if err == nil {
			err = e.discovery.SetRadius(ctx, e.session, radius)
		}
	case "search":
		e.discovery.SetSearchText(argument)
	case "view":
		switch strings.TrimSpace(argument) {
		case "map":
			e.discovery.SetViewMode(entity.ViewModeMap)
		default:
			e.discovery.SetViewMode(entity.ViewModeList)
		}
	case "locate":
		err = e.discovery.UseMyLocation(ctx, e.session)
	case "toggle":
		var shopID int64
		shopID, err = strconv.ParseInt(strings.TrimSpace(argument), 10, 64)
		if err == nil {
			err = e.discovery.ToggleSubscription(ctx, e.session, shopID)
		}
	case "help":
		printHelp()

		return true
	default:
		fmt.Printf("unknown command %q, try help\n", command)

		return true
	}

	if err != nil {
		fmt.Println(err.Error())
	}
	e.render()

	return true
}

func (e *engine) render() {
	state := e.discovery.Snapshot()
	shops := e.discovery.VisibleShops()

	if state.ViewMode == entity.ViewModeMap {
		fmt.Println(cli.RenderMap(state, shops))

		return
	}
	fmt.Println(cli.RenderList(state, shops))
}

func printHelp() {
	fmt.Println(strings.TrimSpace(`
reload              reload shops around the current position
radius <meters>     set search radius (1000, 2000, 5000, 10000, 20000)
search <text>       filter shops by name or address
view <list|map>     switch presentation
locate              retry precise location
toggle <shop id>    subscribe or unsubscribe
quit                exit
`))
}
