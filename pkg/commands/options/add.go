package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/entry"
)

// EntryOptions carries the editable fields of an entry.
type EntryOptions struct {
	Title       string
	Date        string
	Place       string
	Event       string
	Person      string
	Description string
	Images      []string
	Videos      []string
}

// EntryFlags names the string flags AddEntryArgs registers, in prompt order.
var EntryFlags = []string{"title", "date", "place", "event", "person", "description"}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the entry.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Date of the entry, example: --date="1910-05-20" or --date="1910".`)
	cmd.Flags().StringVarP(&o.Place, "place", "p", "",
		"Where it happened.")
	cmd.Flags().StringVarP(&o.Event, "event", "e", "",
		"Event category.")
	cmd.Flags().StringVar(&o.Person, "person", "",
		"Person the entry is about.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Longer description.")
	cmd.Flags().StringArrayVar(&o.Images, "image", nil,
		`Image URL, optionally with a caption: --image="https://host/a.png::Caption". Repeatable.`)
	cmd.Flags().StringArrayVar(&o.Videos, "video", nil,
		`Video URL, optionally with a caption: --video="https://youtu.be/ID::Caption". Repeatable.`)
}

// Media converts the image and video flags, images first.
func (o *EntryOptions) Media() []entry.MediaRef {
	out := make([]entry.MediaRef, 0, len(o.Images)+len(o.Videos))
	for _, raw := range o.Images {
		out = append(out, mediaRef(entry.MediaImage, raw))
	}
	for _, raw := range o.Videos {
		out = append(out, mediaRef(entry.MediaVideo, raw))
	}
	return out
}

// Apply copies only the flags the user set onto e. Media flags replace the
// existing media of that type.
func (o *EntryOptions) Apply(cmd *cobra.Command, e entry.Entry) entry.Entry {
	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if changed("title") {
		e.Title = o.Title
	}
	if changed("date") {
		e.Date = o.Date
	}
	if changed("place") {
		e.Place = o.Place
	}
	if changed("event") {
		e.Event = o.Event
	}
	if changed("person") {
		e.Person = o.Person
	}
	if changed("description") {
		e.Description = o.Description
	}
	if changed("image") {
		e.Media = replaceMedia(e.Media, entry.MediaImage, o.Images)
	}
	if changed("video") {
		e.Media = replaceMedia(e.Media, entry.MediaVideo, o.Videos)
	}
	return e
}

// replaceMedia swaps every ref of type t for raws, placed where the first
// old ref of that type was. Refs of the other type keep their positions.
func replaceMedia(media []entry.MediaRef, t entry.MediaType, raws []string) []entry.MediaRef {
	fresh := make([]entry.MediaRef, 0, len(raws))
	for _, raw := range raws {
		fresh = append(fresh, mediaRef(t, raw))
	}
	out := make([]entry.MediaRef, 0, len(media)+len(fresh))
	placed := false
	for _, m := range media {
		if m.Type != t {
			out = append(out, m)
			continue
		}
		if !placed {
			out = append(out, fresh...)
			placed = true
		}
	}
	if !placed {
		out = append(out, fresh...)
	}
	return out
}

func mediaRef(t entry.MediaType, raw string) entry.MediaRef {
	url, caption := raw, ""
	if i := strings.Index(raw, "::"); i >= 0 {
		url, caption = raw[:i], raw[i+2:]
	}
	return entry.MediaRef{Type: t, URL: strings.TrimSpace(url), Caption: strings.TrimSpace(caption)}
}
