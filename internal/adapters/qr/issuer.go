// Package qr renders guest check-in codes as PNG artifacts on disk.
package qr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"guestpass/internal/domain"
)

const imageSize = 256

// nameCleaner strips characters that would break the artifact path.
var nameCleaner = strings.NewReplacer("/", "-", "\\", "-", string(os.PathSeparator), "-")

// Issuer writes one QR code per guest under a fixed directory. The encoded
// payload is the check-in URL carrying the guest id; whoever holds it can
// check that guest in.
type Issuer struct {
	dir     string
	baseURL string
}

// NewIssuer returns an Issuer caching artifacts under dir. baseURL is
// the public address the codes will point at.
func NewIssuer(dir, baseURL string) *Issuer {
	return &Issuer{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

var _ domain.CodeIssuer = (*Issuer)(nil)

// CodePath returns the deterministic artifact path for a guest.
func (i *Issuer) CodePath(guestID, name string) string {
	return filepath.Join(i.dir, fmt.Sprintf("%s_%s.png", nameCleaner.Replace(name), guestID))
}

// CheckInURL returns the URL encoded into a guest's code.
func (i *Issuer) CheckInURL(guestID string) string {
	return fmt.Sprintf("%s/confirmar?id=%s", i.baseURL, guestID)
}

func (i *Issuer) EnsureCode(guestID, name string, force bool) (string, bool, error) {
	path := i.CodePath(guestID, name)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, false, nil
		}
	}
	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return "", false, fmt.Errorf("create code dir: %w", err)
	}
	if err := qrcode.WriteFile(i.CheckInURL(guestID), qrcode.Medium, imageSize, path); err != nil {
		return "", false, fmt.Errorf("write code for guest %s: %w", guestID, err)
	}
	return path, true, nil
}

func (i *Issuer) PurgeAll() (int, error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read code dir: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(i.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
