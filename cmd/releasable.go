package main

import (
	"sort"
	"time"
)

// release-target fields.  Per target, the object's own (what: self) tags take
// precedence over tags inherited from parent collections (what: collection);
// within a group the latest tag by date wins, falling back to declaration
// order when dates are missing or unparseable.

func buildReleasableFields(r *indexRequest) solrDoc {
	doc := solrDoc{}

	released := releasedTargets(r.ctx)

	doc.setField("released_to_ssim", released)

	return doc
}

func releasedTargets(ctx *indexingContext) []string {
	selfTags := make(map[string][]releaseTag)
	collectionTags := make(map[string][]releaseTag)

	for _, tag := range ctx.ReleaseTags {
		if tag.To == "" {
			continue
		}

		if tag.What == "self" {
			selfTags[tag.To] = append(selfTags[tag.To], tag)
		}
	}

	for _, tags := range ctx.CollectionReleaseTags {
		for _, tag := range tags {
			if tag.To == "" || tag.What != "collection" {
				continue
			}

			collectionTags[tag.To] = append(collectionTags[tag.To], tag)
		}
	}

	targets := make(map[string]bool)

	for to := range selfTags {
		targets[to] = true
	}

	for to := range collectionTags {
		targets[to] = true
	}

	var released []string

	for to := range targets {
		tags := selfTags[to]
		if len(tags) == 0 {
			tags = collectionTags[to]
		}

		if winner := latestTag(tags); winner != nil && winner.Release == true {
			released = append(released, to)
		}
	}

	sort.Strings(released)

	return released
}

// latestTag returns the tag with the most recent date; undated tags sort
// earliest, ties keep declaration order.
func latestTag(tags []releaseTag) *releaseTag {
	if len(tags) == 0 {
		return nil
	}

	best := 0
	bestTime := tagTime(&tags[0])

	for i := 1; i < len(tags); i++ {
		if t := tagTime(&tags[i]); t.Before(bestTime) == false {
			best = i
			bestTime = t
		}
	}

	return &tags[best]
}

func tagTime(tag *releaseTag) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, tag.Date); err == nil {
			return t
		}
	}

	return time.Time{}
}
