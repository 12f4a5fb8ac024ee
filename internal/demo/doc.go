// Package demo builds the example document used by the mirror command:
//
//	<html id="root">
//	  <head><script lang="js">bootstraps</script></head>
//	  <body><span id="heading">Hello, World!</span></body>
//	</html>
//
// Every element is live; the script element is frozen and carries the
// bootstraps of all five elements in document order.
package demo
