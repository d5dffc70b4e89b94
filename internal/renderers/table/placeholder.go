package table

// PlaceholderDataURI is the 50x50 thumbnail shown in preview cells.
const PlaceholderDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAADIAAAAyCAYAAAAeP4ixAAAAAXNSR0IB2cksfwAAAARnQU1BAACxjwv8YQUAAAAgY0hSTQAAeiYAAICEAAD6AAAAgOgAAHUwAADqYAAAOpgAABdwnLpRPAAAAAZiS0dEAP8A/wD/oL2nkwAAAAlwSFlzAAAuIwAALiMBeKU/dgAAAAd0SU1FB+kMDhEEEyWGN0UAAALASURBVGje7dpNqFVVGMbx39mpEKV9IVk6CcrJKiKTRmIldAfVTqhJkJNFEDQICiSIJEihog8EowYN2kTSoEsOWkUfNOhCDYoEEzdCTcKCxKgsoswb3QaeE4fL2rcrce9ZxX5m53nX2qz/Xu+79oL3DJyF2qbegI24COdaGs3iRxzDFyGmPxczabCIxW9GxJ1YZ3n1C97FfrwZYpo7a5C2qTdiL25Vho5gZ4jpvUWDtE19P55bwvT5N3oJD4SYTi8I0jb1XjyobM1ge4jpp5FRzYN44j8AATfiQNvUK0fGijGIu/DIIgpvBseHv5dCq3ApNuN2XN4xbhuexkN/p1bb1JfgKNZmJszheewOMX2/nK99+Mbvw5NY3bG2rSGmj0Y78nAHxGnsCDFNTyJ/QkyzeKFt6hm8gw2Zw+opbBm0TX3+MFXOyzzr3hDTyyUURdvU1+LjjnVurbC9I/h2KRDD3fkcuzvC91S4pSO4p8DTah9OZvypCpsygeP4tDSKENMpvJ8JXVFlCggOL3SvmbAO58wKazL+dwV/DE90gZyT8f8oGGS2C+R/oR6kB+lBepAepAfpQXqQHqQH6UF6kB6kB+lBygU5lfFXF7zmNV0gP2T89QWDrO8COZrxN7VNfUGhINsy3m8VPskEVmJHaQRtU1+D6zOhgxUOdMzb1Tb1xQVBDPCsfCf6jSrEdBCHMsF1mB5vOE5YezCVSyu8Njp+H18gHz9om3rtBHdiRdvU+/Box5AXQ0wnBmMT3sJtHYNP4hnsDzEdWyaAC3EHduGqjmFf4+oQ08/jIJfhM93t4JG+wrf4dYkYVjnTmL3SWPs8o1lMhZg+NL9whg3HGZR69I40hxhieiV7RRk2HLfgm4Ihfsfd4xDZu1aI6Qiuw3SBEIdwQ4jp9fmBwT8U3M14DDdNGOBLZ/798GqIKdtN+wunrreJ/WDwUAAAAABJRU5ErkJggg=="
