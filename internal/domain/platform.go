package domain

// Platform is the closed set of sources a URL can be attributed to.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformFacebook  Platform = "facebook"
	PlatformUnknown   Platform = "unknown"
)

func (p Platform) String() string {
	return string(p)
}

// IsVideo reports whether the platform is handled by the video pipeline.
func (p Platform) IsVideo() bool {
	switch p {
	case PlatformYouTube, PlatformTikTok, PlatformFacebook:
		return true
	}
	return false
}

func (p Platform) Known() bool {
	return p != "" && p != PlatformUnknown
}
