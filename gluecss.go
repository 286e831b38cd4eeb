// Package gluecss generates sprite stylesheets (CSS, LESS or SCSS) from the
// geometry of packed sprite sheets.
//
// A packer writes one manifest per sprite sheet with the sheet hash, its size,
// the high-DPI variants and every packed image rectangle. gluecss turns each
// manifest into a stylesheet that exposes one class per image:
//
//	.sprite_icons_close,.sprite_icons_open:hover{
//	    background-image:url('icons.png');
//	    background-repeat:no-repeat;
//	}
//
// # Generation
//
//	config := gluecss.Config{
//		SourceDir: "build/sprites",
//		Includes:  []string{"**/*.yaml"},
//		OutputDir: "web/static/css",
//		Options:   gluecss.DefaultOptions(),
//		Version:   "0.13",
//	}
//	result, err := gluecss.Generate(config)
//
// Every stylesheet starts with a "/* glue: <version> hash: <hash> */" header.
// When the header of an existing stylesheet already matches, the sprite is
// skipped, so repeated runs only rewrite sheets that changed.
//
// # Class names
//
// Class names join the global namespace, the sprite namespace and the image
// filename with a separator ("_" by default, or camelCase). A filename such as
// "close__hover.png" produces the selector ".sprite_icons_close:hover".
package gluecss
