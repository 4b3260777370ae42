package main

import "github.com/killallgit/segment-editor/cmd"

// @title           Segment Editor API
// @version         1.0
// @description     Timeline segment editing: segment storage, gesture replay and annotation drafts
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/segment-editor
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
