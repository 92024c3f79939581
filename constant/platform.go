package constant

// InstallMPV maps runtime.GOOS to the command that installs mpv there.
var InstallMPV = map[string]string{
	"darwin":  "brew install mpv",
	"linux":   "sudo apt install mpv",
	"windows": "scoop install mpv",
	"freebsd": "sudo pkg install mpv",
}
