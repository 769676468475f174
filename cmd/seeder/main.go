package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mvolden/sideout/internal/database"
	"github.com/mvolden/sideout/internal/match"
	"github.com/mvolden/sideout/internal/matchlog"
	"github.com/mvolden/sideout/internal/roster"
	"github.com/mvolden/sideout/internal/rotation"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":        "sideout.db",
		"MIGRATIONS_DIR": "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	// Optional remote database credentials.
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

type seedPlayer struct {
	role   rotation.Role
	name   string
	jersey int
}

var homeSquad = []seedPlayer{
	{"S", "Sander Berg", 1},
	{"OH (w.s)", "Oda Lie", 2},
	{"MB", "Mia Holm", 3},
	{"Oppo", "Olav Dahl", 4},
	{"OH", "Oskar Vik", 5},
	{"MB (w.s)", "Marte Nes", 6},
	{rotation.RoleLibero, "Liv Moen", 12},
}

var awaySquad = []seedPlayer{
	{"S", "Erik Foss", 7},
	{"OH (w.s)", "Nora Aas", 8},
	{"MB", "Ida Rud", 9},
	{"Oppo", "Jon Eng", 10},
	{"OH", "Siri Bakke", 11},
	{"MB (w.s)", "Kari Strand", 13},
	{rotation.RoleLibero, "Tale Vang", 14},
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, dbTeardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	rosterStore := roster.New(db)
	matchStore := matchlog.New(db)

	homeCfg := seedTeam(rosterStore, "demo-home", homeSquad)
	awayCfg := seedTeam(rosterStore, "demo-away", awaySquad)

	if err := rotation.ValidateComplete(homeCfg); err != nil {
		log.Fatalf("Home configuration incomplete: %s", err)
	}
	if err := rotation.ValidateComplete(awayCfg); err != nil {
		log.Fatalf("Away configuration incomplete: %s", err)
	}

	session, err := matchStore.CreateMatch(match.NewTeamState(homeCfg), match.NewTeamState(awayCfg), match.TeamHome)
	if err != nil {
		log.Fatalf("Failed to create demo match: %s", err)
	}

	engine := match.New(rosterStore)
	if _, err := engine.InitSet(&session.Home, true); err != nil {
		log.Fatalf("Failed to assemble home lineup: %s", err)
	}
	if _, err := engine.InitSet(&session.Away, false); err != nil {
		log.Fatalf("Failed to assemble away lineup: %s", err)
	}
	if err := matchStore.SaveMatch(session); err != nil {
		log.Fatalf("Failed to save demo match: %s", err)
	}

	log.Info("Seeding complete", "matchID", session.ID, "serving", session.ServingTeam)
}

// seedTeam inserts one squad into the roster store and returns the rotation
// configuration referencing it.
func seedTeam(store roster.RosterStore, teamID string, squad []seedPlayer) rotation.Config {
	cfg := rotation.Config{
		System:        rotation.SystemFiveOneOH,
		Players:       make(map[rotation.Role]rotation.PlayerRef),
		LiberoTargets: []rotation.Role{"MB", "MB (w.s)"},
		StartingP1:    "S",
	}

	players := make([]roster.PlayerInfo, 0, len(squad))
	for _, p := range squad {
		id := uuid.New().String()
		players = append(players, roster.PlayerInfo{
			ID:       id,
			TeamID:   teamID,
			Name:     p.name,
			Jersey:   p.jersey,
			Position: string(p.role),
		})
		ref := rotation.RosterRef(teamID, id)
		if p.role == rotation.RoleLibero {
			cfg.Libero = &ref
		} else {
			cfg.Players[p.role] = ref
		}
	}

	if err := store.UpsertPlayers(players); err != nil {
		log.Fatalf("Failed to seed players for %s: %s", teamID, err)
	}
	log.Info("Seeded squad", "team", teamID, "players", len(players))
	return cfg
}
