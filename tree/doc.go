/*
Package tree implements a generic tree of mutable nodes.

Nodes carry a payload and keep an ordered list of children. Child lists are
protected by a mutex, so building a tree and querying positions of nodes may
happen from different goroutines.

Retained widget trees in package widgettree are built on top of this.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
