package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"primegate_backend/internal/storage"
	"primegate_backend/pkg/utils/cloudflare"
	objectstorage "primegate_backend/pkg/utils/storage"
)

// Options carries the external collaborators the handlers talk to.
// Either client may be nil when the environment is not configured.
type Options struct {
	InquiryInbox string
	Images       *cloudflare.Client
	Objects      *objectstorage.Client
}

var (
	store storage.Storage
	opts  Options
)

// Init wires the process-wide storage instance into the handlers. Must
// be called once at startup, before any route is served; tests call it
// with a fresh in-memory store per run.
func Init(s storage.Storage, o Options) {
	store = s
	opts = o
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
