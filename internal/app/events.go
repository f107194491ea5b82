package app

// Event names for frontend communication.
const (
	EventAppease = "appease"
)

// Status label texts.
const (
	StatusRestless      = "The spirits are restless..."
	StatusCalm          = "The spirits are calm... for now."
	StatusRestlessAgain = "The spirits are restless again!"
)

// MessageTitle is the title of spooky_message dialogs.
const MessageTitle = "..."
