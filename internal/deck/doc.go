// Package deck renders a parsed deck configuration into a PowerPoint file.
//
// A Service walks the slide list and dispatches each entry to a builder:
//
//	cover          title slide with report type marker
//	section        section divider with numbered circle
//	content        bulleted body text
//	content_boxed  per-topic boxes with item rows
//	content_icons  icon circle + title + description rows
//	comparison     two bordered panels with item rows
//	text           freely positioned text blocks
//	table          header + striped data rows
//	cards          card grid in one of nine styles
//	architecture   auto-scaled component diagram with routed connectors
//	flowchart      step sequence rendered through the diagram builder
//	summary        check-marked points with optional highlight box
//	image          centered picture with caption
//	timeline       horizontal step boxes or vertical status line
//	stats          stat cards or inline circles
//	two_column     ratio-split columns of bullets, text, or images
//	chart          native chart from categories and series
//	org_chart      level-layered organization boxes with connectors
//	tree           monospace directory tree plus description cards
//
// Unknown slide types are reported on the warning writer and skipped.
package deck
