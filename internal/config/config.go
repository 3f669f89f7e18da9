package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	TelegramApiToken string  `toml:"telegram_apitoken"`
	GroupID          int64   `toml:"group_id"`
	AdminIDs         []int64 `toml:"admin_ids"`
	SqliteFile       string  `toml:"sqlite_file"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
	SqliteFile   string `toml:"sqlite_file"`
}

type Scheduler struct {
	IntervalMinutes int `toml:"interval_minutes"`
	WindowMinutes   int `toml:"window_minutes"`
	ChunkSize       int `toml:"chunk_size"`
}

func (s Scheduler) Interval() time.Duration {
	return time.Duration(s.IntervalMinutes) * time.Minute
}

// Window is clamped to the polling interval so skipped ticks or clock
// drift cannot open a gap between consecutive scans.
func (s Scheduler) Window() time.Duration {
	w := time.Duration(s.WindowMinutes) * time.Minute
	if w < s.Interval() {
		return s.Interval()
	}
	return w
}

type Config struct {
	TgBot     TgBot
	Server    Server
	Scheduler Scheduler
}

func New() (Config, error) {
	var tgBotCfg TgBot
	_, err := toml.DecodeFile("configs/bot.toml", &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}
	if group := os.Getenv("GROUP_ID"); group != "" {
		id, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return Config{}, err
		}
		tgBotCfg.GroupID = id
	}
	if tgBotCfg.SqliteFile == "" {
		tgBotCfg.SqliteFile = "bot.sqlite"
	}

	var serverCfg Server
	_, err = toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "events.sqlite"
	}

	var schedulerCfg Scheduler
	_, err = toml.DecodeFile("configs/scheduler.toml", &schedulerCfg)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	if schedulerCfg.IntervalMinutes <= 0 {
		schedulerCfg.IntervalMinutes = 1
	}
	if schedulerCfg.WindowMinutes <= 0 {
		schedulerCfg.WindowMinutes = 1
	}
	if schedulerCfg.ChunkSize <= 0 {
		schedulerCfg.ChunkSize = 10
	}

	return Config{
		TgBot:     tgBotCfg,
		Server:    serverCfg,
		Scheduler: schedulerCfg,
	}, nil
}
