package banner

import "mispimport/internal/buildinfo"

const (
	Adversaries = `
  ____  ___    __ __    ___  ____    _____  ____  ____   ____    ___  _____
 /    T|   \  |  T  |  /  _]|    \  / ___/ /    T|    \ l    j  /  _]/ ___/
Y  o  ||    \ |  |  | /  [_ |  D  )(   \_ Y  o  ||  D  ) |  T  /  [_(   \_
|     ||  D  Y|  |  |Y    _]|    /  \__  T|     ||    /  |  | Y    _]\__  T
|  _  ||     |l  :  !|   [_ |    \  /  \ ||  _  ||    \  |  | |   [_ /  \ |
|  |  ||     | \   / |     T|  .  Y \    ||  |  ||  .  Y j  l |     T\    |
l__j__jl_____j  \_/  l_____jl__j\_j  \___jl__j__jl__j\_j|____jl_____j \___j
`

	Indicators = `
 ____  ____   ___    ____    __   ____  ______   ___   ____    _____
l    j|    \ |   \  l    j  /  ] /    T|      T /   \ |    \  / ___/
 |  T |  _  Y|    \  |  T  /  / Y  o  ||      |Y     Y|  D  )(   \_
 |  | |  |  ||  D  Y |  | /  /  |     |l_j  l_j|  O  ||    /  \__  T
 |  | |  |  ||     | |  |/   \_ |  _  |  |  |  |     ||    \  /  \ |
 j  l |  |  ||     | j  l\     ||  |  |  |  |  l     !|  .  Y \    |
|____jl__j__jl_____j|____j\____jl__j__j  l__j   \___/ l__j\_j  \___j
`

	Reports = `
 ____     ___  ____    ___   ____  ______  _____
|    \   /  _]|    \  /   \ |    \|      T/ ___/
|  D  ) /  [_ |  o  )Y     Y|  D  )      (   \_
|    / Y    _]|   _/ |  O  ||    /l_j  l_j\__  T
|    \ |   [_ |  |   |     ||    \  |  |  /  \ |
|  .  Y|     T|  |   l     !|  .  Y |  |  \    |
l__j\_jl_____jl__j    \___/ l__j\_j l__j   \___j
`

	Delete = `
______  _______        _______ _______ _______
|     \ |______ |      |______    |    |______
|_____/ |______ |_____ |______    |    |______
`

	Import = `
_____ _______  _____   _____   ______ _______
  |   |  |  | |_____] |     | |_____/    |
__|__ |  |  | |       |_____| |    \_    |
`

	ConfigCheck = `
_______ _     _ _______ _______ _     _      _______  _____  __   _ _______ _____  ______
|       |_____| |______ |       |____/       |       |     | | \  | |______   |   |  ____
|_____  |     | |______ |_____  |    \_      |_____  |_____| |  \_| |       __|__ |_____|
`

	Finished = `
 _______  __  .__   __.  __       _______. __    __   _______  _______
|   ____||  | |  \ |  | |  |     /       ||  |  |  | |   ____||       \
|  |__   |  | |   \|  | |  |    |   (----` + "`" + `|  |__|  | |  |__   |  .--.  |
|   __|  |  | |  . ` + "`" + `  | |  |     \   \    |   __   | |   __|  |  |  |  |
|  |     |  | |  |\   | |  | .----)   |   |  |  |  | |  |____ |  '--'  |
|__|     |__| |__| \__| |__| |_______/    |__|  |__| |_______||_______/
`

	ChecksPassed = `
____ _  _ ____ ____ _  _ ____    ___  ____ ____ ____ ____ ___
|    |__| |___ |    |_/  [__     |__] |__| [__  [__  |___ |  \
|___ |  | |___ |___ | \_ ___]    |    |  | ___] ___] |___ |__/
`

	ChecksFailed = `
____ _  _ ____ ____ _  _ ____    ____ ____ _ _    ____ ___
|    |__| |___ |    |_/  [__     |___ |__| | |    |___ |  \
|___ |  | |___ |___ | \_ ___]    |    |  | | |___ |___ |__/
`

	Warning = `
@@@  @@@  @@@   @@@@@@   @@@@@@@   @@@  @@@  @@@  @@@  @@@   @@@@@@@@  @@@
@@@  @@@  @@@  @@@@@@@@  @@@@@@@@  @@@@ @@@  @@@  @@@@ @@@  @@@@@@@@@  @@@
@@!  @@!  @@!  @@!  @@@  @@!  @@@  @@!@!@@@  @@!  @@!@!@@@  !@@        @@!
!@!  !@!  !@!  !@!  @!@  !@!  @!@  !@!!@!@!  !@!  !@!!@!@!  !@!        !@
@!!  !!@  @!@  @!@!@!@!  @!@!!@!   @!@ !!@!  !!@  @!@ !!@!  !@! @!@!@  @!@
!@!  !!!  !@!  !!!@!!!!  !!@!@!    !@!  !!!  !!!  !@!  !!!  !!! !!@!!  !!!
!!:  !!:  !!:  !!:  !!!  !!: :!!   !!:  !!!  !!:  !!:  !!!  :!!   !!:
:!:  :!:  :!:  :!:  !:!  :!:  !:!  :!:  !:!  :!:  :!:  !:!  :!:   !::  :!:
 :::: :: :::   ::   :::  ::   :::   ::   ::   ::   ::   ::   ::: ::::   ::
  :: :  : :     :   : :   :   : :  ::    :   :    ::    :    :: :: :   :::
`
)

// MISP returns the start-up banner stamped with the build version.
func MISP() string {
	return mispHead + buildinfo.Version + mispTail
}

const mispHead = `
'##::::'##:'####::'######::'########:::::'########::'#######:::'#######::'##::::::::'######::
 ###::'###:. ##::'##... ##: ##.... ##::::... ##..::'##.... ##:'##.... ##: ##:::::::'##... ##:
 ####'####:: ##:: ##:::..:: ##:::: ##::::::: ##:::: ##:::: ##: ##:::: ##: ##::::::: ##:::..::
 ## ### ##:: ##::. ######:: ########:::::::: ##:::: ##:::: ##: ##:::: ##: ##:::::::. ######::
 ##. #: ##:: ##:::..... ##: ##.....::::::::: ##:::: ##:::: ##: ##:::: ##: ##::::::::..... ##:
 ##:.:: ##:: ##::'##::: ##: ##:::::::::::::: ##:::: ##:::: ##: ##:::: ##: ##:::::::'##::: ##:
 ##:::: ##:'####:. ######:: ##:::::::::::::: ##::::. #######::. #######:: ########:. ######::
..:::::..::....:::......:::..:::::::::::::::..::::::.......::::.......:::........:::......:::
           _____
            /  '
         ,-/-,__ __
        (_/  (_)/ (_
                     _______                        __ _______ __        __ __
                    |   _   .----.-----.--.--.--.--|  |   _   |  |_.----|__|  |--.-----.
                    |.  1___|   _|  _  |  |  |  |  _  |   1___|   _|   _|  |    <|  -__|
                    |.  |___|__| |_____|________|_____|____   |____|__| |__|__|__|_____|
                    |:  1   |                         |:  1   |
                    |::.. . |                         |::.. . |  Threat Intelligence v`

const mispTail = `
                    ` + "`" + `-------'                         ` + "`" + `-------'
`
