package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/mostevr/cardstock/config"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext is the dependency surface handed to the web layer.
type AppContext interface {
	DBProvider
	ConfigProvider
	BusProvider
}
