package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFolder   = "\uf07b" // folder
	IconLogs     = "\uf0f6" // file-text

	IconEye      = "\uf06e" // eye
	IconEyeSlash = "\uf070" // eye-slash
	IconDesktop  = "\uf108" // desktop
	IconPointer  = "\uf245" // mouse-pointer
	IconLock     = "\uf023" // lock
	IconRocket   = "\uf135" // rocket
	IconClock    = "\uf017" // clock
)
