package documents

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// Deliverer hands a rendered payload to its destination. The composition
// root picks the implementation: browser download or device-local save.
type Deliverer interface {
	Deliver(payload []byte, fileName string) error
}

// LocalDeliverer saves the payload into a directory on the host, the
// "save to device" path of the export dialog.
type LocalDeliverer struct {
	Dir string
}

func (d LocalDeliverer) Deliver(payload []byte, fileName string) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	path := filepath.Join(d.Dir, fileName)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// ResponseDeliverer streams the payload as a browser download on the
// current request.
type ResponseDeliverer struct {
	Ctx         *fiber.Ctx
	ContentType string
}

func (d ResponseDeliverer) Deliver(payload []byte, fileName string) error {
	contentType := d.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	d.Ctx.Set(fiber.HeaderContentType, contentType)
	d.Ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	if err := d.Ctx.Send(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
