package blocklist

import (
	"log"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Holder keeps the active filter behind an atomic pointer so the term
// file can be hot-reloaded without restarting the process.
type Holder struct {
	current atomic.Value // holds *Filter
}

type fileSchema struct {
	Terms []string `mapstructure:"terms"`
}

// NewHolder loads the blocklist file at path and watches it for
// changes. A missing file yields an empty filter: the service favors
// availability over a hard startup failure.
func NewHolder(path string) (*Holder, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	holder := &Holder{}
	holder.current.Store(NewFilter(nil))

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[blocklist] %s not readable, starting empty: %v", path, err)
		return holder, nil
	}

	var cfg fileSchema
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	holder.current.Store(NewFilter(cfg.Terms))

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated fileSchema
		if err := v.Unmarshal(&updated); err != nil {
			log.Printf("[blocklist] reload failed, keeping previous terms: %v", err)
			return
		}
		holder.current.Store(NewFilter(updated.Terms))
		log.Printf("[blocklist] reloaded %d terms from %s", len(updated.Terms), e.Name)
	})

	return holder, nil
}

// Get returns the active filter.
func (h *Holder) Get() *Filter {
	return h.current.Load().(*Filter)
}

// Swap replaces the active filter. Used by tests and by reload.
func (h *Holder) Swap(f *Filter) {
	if f == nil {
		f = NewFilter(nil)
	}
	h.current.Store(f)
}
