package domain

// Metadata keys.
const (
	MetaUsername     = "username"
	MetaPostURL      = "post_url"
	MetaShortcode    = "shortcode"
	MetaImageCount   = "image_count"
	MetaIsCarousel   = "is_carousel"
	MetaTitle        = "title"
	MetaDescription  = "description"
	MetaUploader     = "uploader"
	MetaUploaderURL  = "uploader_url"
	MetaDuration     = "duration"
	MetaDurationText = "duration_string"
	MetaViewCount    = "view_count"
	MetaLikeCount    = "like_count"
	MetaUploadDate   = "upload_date"
	MetaWebpageURL   = "webpage_url"
	MetaExtractor    = "extractor"
	MetaThumbnail    = "thumbnail"
	MetaProviderName = "provider_name"
	MetaAuthorURL    = "author_url"
	MetaVideoFile    = "video_file"
	MetaFrameCount   = "frame_count"
)
