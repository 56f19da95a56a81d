package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type AvatarService interface {
	// CreateUserAvatar renders an initials avatar, stores it on local disk and
	// fills in the user's avatar fields. It does not persist the user row.
	CreateUserAvatar(ctx context.Context, user *types.User) error
	GenerateUserAvatar(user *types.User) (bytes.Buffer, error)
}

type avatarService struct {
	log       *logger.Logger
	dir       string
	publicURL string

	bgColors []color.NRGBA
	fontFace font.Face
}

var avatarPalette = []color.NRGBA{
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF},
	{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
	{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF},
	{R: 0x00, G: 0x96, B: 0x88, A: 0xFF},
	{R: 0x79, G: 0x55, B: 0x48, A: 0xFF},
	{R: 0x60, G: 0x7D, B: 0x8B, A: 0xFF},
}

func NewAvatarService(baseLog *logger.Logger, dir, publicURL string) (AvatarService, error) {
	serviceLog := baseLog.With("service", "AvatarService")

	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = "./data/avatars"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir: %w", err)
	}

	publicURL = strings.TrimRight(strings.TrimSpace(publicURL), "/")
	if publicURL == "" {
		publicURL = "/static/avatars"
	}

	face, err := loadAvatarFontFace(serviceLog)
	if err != nil {
		return nil, err
	}

	return &avatarService{
		log:       serviceLog,
		dir:       dir,
		publicURL: publicURL,
		bgColors:  avatarPalette,
		fontFace:  face,
	}, nil
}

func loadAvatarFontFace(log *logger.Logger) (font.Face, error) {
	fontPath := strings.TrimSpace(os.Getenv("AVATAR_FONT"))
	if fontPath == "" {
		log.Info("AVATAR_FONT not set, using builtin face")
		return basicfont.Face7x13, nil
	}
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse TTF: %w", err)
	}
	return truetype.NewFace(parsedFont, &truetype.Options{
		Size:    206,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

func (as *avatarService) CreateUserAvatar(ctx context.Context, user *types.User) error {
	buf, err := as.GenerateUserAvatar(user)
	if err != nil {
		return err
	}

	oldKey := strings.TrimSpace(user.AvatarKey)

	// Versioned key so browsers never serve a stale cached avatar.
	newKey := fmt.Sprintf("%s_%d.png", user.ID.String(), time.Now().UnixNano())
	if err := os.WriteFile(filepath.Join(as.dir, newKey), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write avatar file: %w", err)
	}

	user.AvatarKey = newKey
	user.AvatarURL = as.publicURL + "/" + newKey

	if oldKey != "" && oldKey != newKey {
		if err := os.Remove(filepath.Join(as.dir, oldKey)); err != nil {
			as.log.Warn("Failed to delete old avatar", "old_key", oldKey, "error", err)
		}
	}
	return nil
}

func (as *avatarService) GenerateUserAvatar(user *types.User) (bytes.Buffer, error) {
	const size = 512
	var buf bytes.Buffer

	dc := gg.NewContext(size, size)

	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Clip()

	dc.SetColor(as.pickColor(user.ID.String()))
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	initials := computeInitials(user.FirstName, user.LastName)

	dc.SetFontFace(as.fontFace)
	tw, th := dc.MeasureString(initials)
	cx, cy := float64(size)/2, float64(size)/2

	dc.SetColor(color.White)
	dc.DrawString(initials, cx-(tw/2), cy+(th/2))

	if err := dc.EncodePNG(&buf); err != nil {
		return buf, fmt.Errorf("encode PNG: %w", err)
	}
	return buf, nil
}

// pickColor is stable per seed so regenerated avatars keep their background.
func (as *avatarService) pickColor(seed string) color.NRGBA {
	if seed == "" {
		return as.bgColors[rand.Intn(len(as.bgColors))]
	}
	var sum int
	for _, r := range seed {
		sum += int(r)
	}
	return as.bgColors[sum%len(as.bgColors)]
}

func computeInitials(first, last string) string {
	fInit := "?"
	if len(first) > 0 {
		fInit = strings.ToUpper(first[:1])
	}
	lInit := "?"
	if len(last) > 0 {
		lInit = strings.ToUpper(last[:1])
	}
	return fInit + lInit
}
