// Package markup renders credits into a document tree.
//
// # Overview
//
// [Formatter] builds nested elements through the four-operation [Tree]
// capability, so it works with any node type: the HTML backend in this
// package, a DOM binding or a test double. The default structure mirrors
// the credit tree:
//
//	<div>                         root, one per Format call
//	  <p>                         one line per record
//	    <a href="…">title</a> by <a href="…">name</a> (<a href="…">license</a>).
//	    Source:
//	    <ul>                      sources list
//	      <li><p>…</p></li>       one item per source
//	    </ul>
//	  </p>
//	</div>
//
// Fields with a URL become links; fields without one become text nodes, or
// text elements when a class is configured for them.
//
// # Configuration
//
// [Config] names the element used for each structural role and an optional
// class attribute per role. [ConfigFromMap] builds one from string keys
// (root, line, sources, source, link, text and the matching *_class keys)
// and rejects anything else, which is how the CLI and server accept markup
// settings.
//
// # HTML
//
// [NewHTML] binds the formatter to [golang.org/x/net/html] nodes:
//
//	f := markup.NewHTML(markup.DefaultConfig())
//	if err := credit.Format(c, f); err != nil {
//		return err
//	}
//	s, err := f.HTML()
package markup
