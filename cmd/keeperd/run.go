package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/keeperforge/keeper-core/internal/config"
	"github.com/keeperforge/keeper-core/internal/engine/memstore"
	"github.com/keeperforge/keeper-core/internal/entities"
	"github.com/keeperforge/keeper-core/internal/errors"
	"github.com/keeperforge/keeper-core/internal/orchestrators/objects"
	"github.com/keeperforge/keeper-core/internal/orchestrators/player"
	"github.com/keeperforge/keeper-core/internal/pkg/clock"
	"github.com/keeperforge/keeper-core/internal/pkg/idgen"
	redisclient "github.com/keeperforge/keeper-core/internal/redis"
	"github.com/keeperforge/keeper-core/internal/repositories/rules"
)

var (
	settingsPath  string
	rulesPath     string
	thingsPath    string
	redisEndpoint string
	keeperCount   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation core",
	Long:  `Run the simulation core: seed the rule tables, load map-authored objects, and tick the keeper economies until interrupted.`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVar(&settingsPath, "settings", "", "settings YAML file (defaults apply when omitted)")
	runCmd.Flags().StringVar(&rulesPath, "rules", "", "rule tables YAML file (required)")
	runCmd.Flags().StringVar(&thingsPath, "things", "", "map things YAML file to load at startup")
	runCmd.Flags().StringVar(&redisEndpoint, "redis", "", "redis endpoint for the rules repository (in-memory when omitted)")
	runCmd.Flags().IntVar(&keeperCount, "keepers", 1, "number of keeper players")
	_ = runCmd.MarkFlagRequired("rules")
}

// mapFile is the on-disk shape of a map things file. Creatures are listed
// for completeness; the spawning collaborator consumes them.
type mapFile struct {
	Objects   []entities.ObjectThing   `yaml:"objects"`
	Creatures []entities.CreatureThing `yaml:"creatures"`
	Rooms     []roomThing              `yaml:"rooms"`
}

// roomThing is a map-authored initial room placement
type roomThing struct {
	RoomID   entities.RoomTypeID `yaml:"room_id"`
	PlayerID entities.PlayerID   `yaml:"player_id"`
	Tiles    []entities.Point    `yaml:"tiles"`
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	settings := config.Default()
	if settingsPath != "" {
		loaded, err := config.Load(settingsPath)
		if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}
		settings = loaded
	}

	repo, err := newRulesRepository()
	if err != nil {
		return err
	}

	tables, err := rules.LoadTables(rulesPath)
	if err != nil {
		return errors.Wrap(err, "failed to load rule tables")
	}
	if err := rules.Seed(ctx, repo, tables); err != nil {
		return errors.Wrap(err, "failed to seed rule tables")
	}
	slog.Info("rule tables seeded",
		"objects", len(tables.Objects),
		"rooms", len(tables.Rooms))

	store := memstore.New()
	objectService, err := objects.NewOrchestrator(&objects.Config{
		EntityStore: store,
		Rules:       repo,
		Settings:    settings,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create object service")
	}

	controllers, err := newKeeperControllers(settings)
	if err != nil {
		return err
	}

	if thingsPath != "" {
		if err := loadThings(ctx, objectService, repo, controllers); err != nil {
			return err
		}
	}

	slog.Info("simulation running",
		"keepers", len(controllers),
		"tick_rate", settings.TickRate)

	clk := clock.New()
	start := clk.Now()
	ticker := time.NewTicker(time.Second / time.Duration(settings.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation stopped", "uptime", clk.Now().Sub(start).Round(time.Second))
			return nil
		case <-ticker.C:
			for _, ctrl := range controllers {
				if mana, ok := ctrl.ManaControl(); ok {
					mana.Tick()
				}
			}
		}
	}
}

func newRulesRepository() (rules.Repository, error) {
	if redisEndpoint == "" {
		return rules.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(redisEndpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return rules.NewRedis(&rules.RedisConfig{Client: client})
}

func loadThings(ctx context.Context, service objects.Service, repo rules.Repository, controllers map[entities.PlayerID]*player.Controller) error {
	data, err := os.ReadFile(thingsPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read things file %s", thingsPath)
	}

	var file mapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse things file")
	}

	things := make([]entities.Thing, 0, len(file.Objects))
	for _, obj := range file.Objects {
		things = append(things, obj)
	}

	output, err := service.LoadFromMapThings(ctx, &objects.LoadFromMapThingsInput{Things: things})
	if err != nil {
		return errors.Wrap(err, "failed to load map things")
	}
	slog.Info("map things loaded",
		"created", len(output.EntityIDs),
		"failed", output.Failed)

	return buildRooms(ctx, repo, controllers, file.Rooms)
}

// buildRooms replays the map-authored rooms into each owner's room ledger
func buildRooms(ctx context.Context, repo rules.Repository, controllers map[entities.PlayerID]*player.Controller, things []roomThing) error {
	idGen := idgen.NewUUID("room")

	for _, thing := range things {
		ctrl, ok := controllers[thing.PlayerID]
		if !ok {
			slog.Warn("skipping room for unknown player",
				"room_id", thing.RoomID,
				"player_id", thing.PlayerID)
			continue
		}
		if len(thing.Tiles) == 0 {
			slog.Warn("skipping room with no tiles", "room_id", thing.RoomID)
			continue
		}

		roomOutput, err := repo.GetRoom(ctx, &rules.GetRoomInput{RoomID: thing.RoomID})
		if err != nil {
			return errors.Wrapf(err, "unknown room type %d in things file", thing.RoomID)
		}

		ctrl.RoomControl().OnBuild(&entities.RoomInstance{
			ID:           idGen.Generate(),
			RoomID:       thing.RoomID,
			Coordinates:  thing.Tiles,
			Center:       thing.Tiles[len(thing.Tiles)/2],
			DungeonHeart: roomOutput.Room.Flags.Has(entities.RoomFlagDungeonHeart),
		})
	}

	return nil
}

func newKeeperControllers(settings *config.Settings) (map[entities.PlayerID]*player.Controller, error) {
	controllers := make(map[entities.PlayerID]*player.Controller, keeperCount)
	for i := 0; i < keeperCount; i++ {
		keeper := &entities.Keeper{ID: entities.Keeper1ID + entities.PlayerID(i)}
		ctrl, err := player.NewController(&player.Config{
			Keeper:   keeper,
			Settings: settings,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create controller for player %d", keeper.ID)
		}
		controllers[keeper.ID] = ctrl
	}
	return controllers, nil
}
